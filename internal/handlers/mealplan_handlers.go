package handlers

import (
	"net/http"

	"github.com/plateful/Plateful_Backend/internal/auth"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// MealPlanHandler handles meal plan routes
type MealPlanHandler struct {
	planService MealPlanServiceInterface
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(planService MealPlanServiceInterface) *MealPlanHandler {
	return &MealPlanHandler{
		planService: planService,
	}
}

// planDetail is the response shape for a single plan with its entries
type planDetail struct {
	Plan    *models.MealPlan        `json:"plan"`
	Entries []*models.MealPlanEntry `json:"entries"`
}

// CreatePlan creates a new meal plan for the current user
func (h *MealPlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Decode and validate the request body
	var req models.MealPlanRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Create the plan
	plan, err := h.planService.Create(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the new plan
	utils.JSON(w, constants.StatusCreated, plan)
}

// ListPlans returns all of the current user's meal plans
func (h *MealPlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the plans
	plans, err := h.planService.List(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the plans
	utils.JSON(w, constants.StatusOK, plans)
}

// GetPlan returns one of the current user's plans with its entries
func (h *MealPlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the plan ID from the URL
	planID, err := idFromURL(r, constants.ParamPlanID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Get the plan and its entries
	plan, entries, err := h.planService.Get(r.Context(), userID, planID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the plan detail
	utils.JSON(w, constants.StatusOK, planDetail{Plan: plan, Entries: entries})
}

// DeletePlan removes one of the current user's plans
func (h *MealPlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the plan ID from the URL
	planID, err := idFromURL(r, constants.ParamPlanID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Delete the plan
	if err := h.planService.Delete(r.Context(), userID, planID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return success
	utils.NoContent(w)
}

// AddEntry schedules a recipe into one of the current user's plans
func (h *MealPlanHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the plan ID from the URL
	planID, err := idFromURL(r, constants.ParamPlanID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Decode and validate the request body
	var req models.MealPlanEntryRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Add the entry
	entry, err := h.planService.AddEntry(r.Context(), userID, planID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the new entry
	utils.JSON(w, constants.StatusCreated, entry)
}

// DeleteEntry removes a planned meal from one of the current user's plans
func (h *MealPlanHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the plan and entry IDs from the URL
	planID, err := idFromURL(r, constants.ParamPlanID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}
	entryID, err := idFromURL(r, constants.ParamEntryID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Delete the entry
	if err := h.planService.DeleteEntry(r.Context(), userID, planID, entryID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return success
	utils.NoContent(w)
}

// GetUpcoming returns the current user's planned meals for the next seven
// days across all of their plans
func (h *MealPlanHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the upcoming view
	view, err := h.planService.Upcoming(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the view
	utils.JSON(w, constants.StatusOK, view)
}
