package handlers

import (
	"net/http"

	"github.com/plateful/Plateful_Backend/internal/auth"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// ReviewHandler handles recipe review routes
type ReviewHandler struct {
	reviewService ReviewServiceInterface
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// AddReview creates a review for a recipe by the current user
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the recipe ID from the URL
	recipeID, err := idFromURL(r, constants.ParamRecipeID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Decode and validate the request body
	var req models.ReviewRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Create the review
	review, err := h.reviewService.Add(r.Context(), userID, recipeID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the new review
	utils.JSON(w, constants.StatusCreated, review)
}

// ListReviews returns one page of a recipe's reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	// Get the recipe ID from the URL
	recipeID, err := idFromURL(r, constants.ParamRecipeID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Get pagination parameters
	params := utils.GetPaginationParams(r)

	// Get the reviews
	reviews, total, err := h.reviewService.List(r.Context(), recipeID, params.PageSize, params.Offset())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the paginated page
	utils.Paginated(w, constants.StatusOK, reviews, params.Page, params.PageSize, total)
}

// DeleteReview removes a review written by the current user
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the review ID from the URL
	reviewID, err := idFromURL(r, constants.ParamReviewID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Delete the review
	if err := h.reviewService.Delete(r.Context(), userID, reviewID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return success
	utils.NoContent(w)
}
