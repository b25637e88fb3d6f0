package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/Plateful_Backend/internal/auth"
	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/models"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// PreferenceHandler handles catalog and preference routes
type PreferenceHandler struct {
	preferenceService PreferenceServiceInterface
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferenceService PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// categoryFromURL extracts and parses the catalog category path parameter
func categoryFromURL(r *http.Request) (models.Category, error) {
	raw := chi.URLParam(r, constants.ParamCategory)
	category, err := models.ParseCategory(raw)
	if err != nil {
		return "", utils.NewBadRequestError(constants.MsgUnknownCategory)
	}
	return category, nil
}

// GetCatalog returns the item list for a catalog category. An optional q
// parameter switches to a paginated case-insensitive name search, used by the
// settings dialogs for adding preferences.
func (h *PreferenceHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	// Get the category from the URL
	category, err := categoryFromURL(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// A query parameter selects the search path
	if q := strings.TrimSpace(r.URL.Query().Get(constants.QueryParamQuery)); q != "" {
		page := 0
		if raw := r.URL.Query().Get(constants.QueryParamPage); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				page = parsed
			}
		}

		items, total, err := h.preferenceService.SearchCatalog(
			r.Context(), category, q, constants.DefaultPageSize, page*constants.DefaultPageSize)
		if err != nil {
			utils.ErrorFromAppError(w, utils.ParseError(err))
			return
		}

		utils.Paginated(w, constants.StatusOK, items, page, constants.DefaultPageSize, total)
		return
	}

	// Get the full catalog
	items, err := h.preferenceService.GetCatalog(r.Context(), category)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the items
	utils.JSON(w, constants.StatusOK, items)
}

// GetPreferences returns the current user's merged preference view for a
// category: the full catalog with the user's scores, defaulting to zero.
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the category from the URL
	category, err := categoryFromURL(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Get the merged view
	merged, err := h.preferenceService.GetMergedPreferences(r.Context(), category, userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the merged view
	utils.JSON(w, constants.StatusOK, merged)
}

// ReplacePreferences replaces the current user's entire preference set for a
// replace-all category and returns the fresh merged view.
func (h *PreferenceHandler) ReplacePreferences(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the category from the URL
	category, err := categoryFromURL(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Decode and validate the request body
	var req models.ReplacePreferencesRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Replace the preferences
	if err := h.preferenceService.ReplacePreferences(r.Context(), category, userID, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the fresh merged view
	merged, err := h.preferenceService.GetMergedPreferences(r.Context(), category, userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, merged)
}

// ClearPreferences removes all of the current user's scores in a category and
// returns the resulting all-zero merged view.
func (h *PreferenceHandler) ClearPreferences(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Get the category from the URL
	category, err := categoryFromURL(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Clear the category
	if err := h.preferenceService.ClearPreferences(r.Context(), category, userID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the fresh merged view
	merged, err := h.preferenceService.GetMergedPreferences(r.Context(), category, userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, merged)
}

// UpsertTargets updates the current user's nutrition targets. Unmentioned
// nutrients are left untouched; a zero score removes a target.
func (h *PreferenceHandler) UpsertTargets(w http.ResponseWriter, r *http.Request) {
	// Get the user ID from the context
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Decode and validate the request body
	var req models.UpsertTargetsRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Apply the targets
	if err := h.preferenceService.UpsertTargets(r.Context(), userID, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Return the fresh merged view
	merged, err := h.preferenceService.GetMergedPreferences(r.Context(), models.CategoryNutrient, userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, merged)
}
