package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"HEYNOM_BACK-END/internal/dto"
	"HEYNOM_BACK-END/internal/middleware"
	"HEYNOM_BACK-END/internal/models"
	"HEYNOM_BACK-END/internal/services"
	"HEYNOM_BACK-END/internal/utils"
)

// FoodHandler manages food log endpoints
type FoodHandler struct {
	entries services.FoodEntryService
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(entries services.FoodEntryService) *FoodHandler {
	return &FoodHandler{entries: entries}
}

// ListEntries handles GET /api/food/
// @Summary List food entries
// @Description Entries of the caller, newest logged_at first
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param limit query int false "maximum number of entries" default(200)
// @Success 200 {array} dto.FoodEntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/food/ [get]
func (h *FoodHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	limit := services.DefaultListLimit
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Validation error", "limit must be an integer")
			return
		}
		limit = n
	}

	entries, err := h.entries.List(r.Context(), identity.UserID, limit)
	if err != nil {
		h.writeServiceError(w, "list", identity, err)
		return
	}

	items := make([]dto.FoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toFoodEntryResponse(e))
	}
	utils.WriteJSONResponse(w, http.StatusOK, items)
}

// CreateEntry handles POST /api/food/
// @Summary Log a food entry
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateFoodEntryRequest true "Food entry"
// @Success 201 {object} dto.FoodEntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/food/ [post]
func (h *FoodHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateFoodEntryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	entry, err := h.entries.Create(r.Context(), identity.UserID, models.NewFoodEntry{
		FoodText: req.FoodText,
		MealType: req.MealType,
		LoggedAt: req.LoggedAt,
	})
	if err != nil {
		h.writeServiceError(w, "create", identity, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, toFoodEntryResponse(*entry))
}

// DeleteEntry handles DELETE /api/food/{entry_id}
// @Summary Delete a food entry
// @Description Entries owned by another user are reported as not found
// @Tags food
// @Security BearerAuth
// @Param entry_id path string true "Entry ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/food/{entry_id} [delete]
func (h *FoodHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	// a malformed id cannot match an owned entry
	entryID, err := uuid.Parse(strings.TrimSpace(r.PathValue("entry_id")))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Entry not found")
		return
	}

	if err := h.entries.Delete(r.Context(), identity.UserID, entryID); err != nil {
		h.writeServiceError(w, "delete", identity, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FoodHandler) writeServiceError(w http.ResponseWriter, op string, identity middleware.Identity, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Validation error", strings.TrimPrefix(err.Error(), services.ErrValidation.Error()+": "))
	case errors.Is(err, services.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Entry not found")
	default:
		log.Printf("Error in food %s: %v (user_id=%s)", op, err, identity.UserID.String())
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Failed to "+op+" food entry")
	}
}

func toFoodEntryResponse(e models.FoodEntry) dto.FoodEntryResponse {
	return dto.FoodEntryResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID.String(),
		FoodText:  e.FoodText,
		MealType:  e.MealType,
		LoggedAt:  utils.FormatTimestamp(e.LoggedAt),
		CreatedAt: utils.FormatTimestamp(e.CreatedAt),
	}
}
