package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jmallory/item-api/internal/api/shared"
	"github.com/jmallory/item-api/internal/domain"
	"github.com/jmallory/item-api/internal/service"
)

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	itemService service.ItemService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler. If logger is nil, a default
// logger will be used.
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ItemHandler{
		itemService: itemService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "item_handler")),
	}
}

// CreateItem handles POST /items/ requests.
// Responds 200 with the created item, 422 on validation failure, and 400
// when creation fails unexpectedly.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusUnprocessableEntity, GetSafeErrorMessage(err), err)
			return
		}
		// Unexpected creation failures surface as a 400, matching the
		// documented contract for this endpoint.
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Failed to create item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// ListItems handles GET /items/ requests with optional limit and offset
// query parameters. Unparseable pagination values fall back to defaults.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 0)
	offset := parseQueryInt(r, "offset", 0)

	items, err := h.itemService.ListItems(r.Context(), limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve items", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// GetItem handles GET /items/{id} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// UpdateItem handles PUT /items/{id} requests performing a partial update:
// only fields present in the body change, absent fields keep their value.
// The existence check runs before field validation, so a missing item is a
// 404 even when the patch is invalid.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), id, service.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
		case errors.Is(err, domain.ErrValidation):
			shared.RespondWithErrorAndLog(w, r,
				http.StatusUnprocessableEntity, GetSafeErrorMessage(err), err)
		default:
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, "Failed to update item", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /items/{id} requests. Hard delete; deleting
// the same ID twice yields a 404 the second time.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to delete item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Item deleted successfully",
	})
}

// itemIDParam extracts and parses the {id} URL parameter.
func itemIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// parseQueryInt reads an integer query parameter, returning fallback when
// the parameter is absent or unparseable.
func parseQueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
