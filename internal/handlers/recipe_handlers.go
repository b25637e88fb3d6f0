package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/Plateful_Backend/internal/auth"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// RecipeHandler handles recipe CRUD and search routes
type RecipeHandler struct {
	recipeService RecipeServiceInterface
	searchService SearchServiceInterface
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService RecipeServiceInterface, searchService SearchServiceInterface) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		searchService: searchService,
	}
}

// idFromURL parses an int64 path parameter
func idFromURL(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewBadRequestError("Invalid " + param)
	}
	return id, nil
}

// CreateRecipe creates a new recipe owned by the current user
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Decode and validate the request body
	var req models.RecipeRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Create the recipe
	recipe, err := h.recipeService.Create(r.Context(), userID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the new recipe
	utils.JSON(w, constants.StatusCreated, recipe)
}

// GetRecipe returns a recipe with its aggregate rating
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	// Get the recipe ID from the URL
	recipeID, err := idFromURL(r, constants.ParamRecipeID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Get the recipe detail
	detail, err := h.recipeService.Get(r.Context(), recipeID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the detail
	utils.JSON(w, constants.StatusOK, detail)
}

// UpdateRecipe applies a partial update to a recipe owned by the current user
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
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
	var update models.RecipeUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Update the recipe
	recipe, err := h.recipeService.Update(r.Context(), userID, recipeID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the updated recipe
	utils.JSON(w, constants.StatusOK, recipe)
}

// DeleteRecipe removes a recipe owned by the current user
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
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

	// Delete the recipe
	if err := h.recipeService.Delete(r.Context(), userID, recipeID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return success
	utils.NoContent(w)
}

// SearchRecipes runs a recipe search. Anonymous callers get explicit filters
// only; authenticated callers may additionally flag categories to be ranked
// by their saved preferences.
func (h *RecipeHandler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	// Get the user ID if present; zero means anonymous
	userID, _ := auth.GetUserID(r)

	// Build the search query from the URL parameters
	query := searchQueryFromURL(r)

	// Run the search
	result, err := h.searchService.Search(r.Context(), userID, query)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the result page
	utils.JSON(w, constants.StatusOK, result)
}

// searchQueryFromURL extracts a search submission from query parameters.
// Unparseable page numbers and flags fall back to their zero values.
func searchQueryFromURL(r *http.Request) *models.RecipeSearchQuery {
	params := r.URL.Query()

	page := 0
	if raw := params.Get(constants.QueryParamPage); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	return &models.RecipeSearchQuery{
		Query:                  params.Get(constants.QueryParamQuery),
		Page:                   page,
		Cuisine:                params.Get("cuisine"),
		Diet:                   params.Get("diet"),
		DishType:               params.Get("dish_type"),
		UseCuisinePreferences:  boolParam(params.Get("use_cuisine_preferences")),
		UseDietPreferences:     boolParam(params.Get("use_diet_preferences")),
		UseDishTypePreferences: boolParam(params.Get("use_dish_type_preferences")),
	}
}

// boolParam parses a query flag, treating unparseable values as false
func boolParam(raw string) bool {
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	return err == nil && value
}
