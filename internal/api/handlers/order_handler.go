package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// OrderListing defines the enriched listing operation used by the handler.
type OrderListing interface {
	ListResolved(ctx context.Context) ([]entities.OrderListItem, error)
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	repo    repositories.OrderRepository
	listing OrderListing
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(repo repositories.OrderRepository, listing OrderListing) *OrderHandler {
	return &OrderHandler{
		repo:    repo,
		listing: listing,
	}
}

type orderRequest struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Address     *string `json:"address"`
	Price       *int    `json:"price"`
	CustomerID  *int    `json:"customer_id"`
	ExecutorID  *int    `json:"executor_id"`
}

func (p *orderRequest) validate(requireID bool) error {
	if requireID && p.ID == nil {
		return apperrors.NewFieldValidationError("id", "is required")
	}
	checks := []struct {
		name    string
		present bool
	}{
		{"name", p.Name != nil},
		{"description", p.Description != nil},
		{"start_date", p.StartDate != nil},
		{"end_date", p.EndDate != nil},
		{"address", p.Address != nil},
		{"price", p.Price != nil},
		{"customer_id", p.CustomerID != nil},
		{"executor_id", p.ExecutorID != nil},
	}
	for _, check := range checks {
		if !check.present {
			return apperrors.NewFieldValidationError(check.name, "is required")
		}
	}
	return nil
}

// parseDates converts the wire date strings, failing validation before
// anything is persisted.
func (p *orderRequest) parseDates() (entities.Date, entities.Date, error) {
	start, err := entities.ParseDate(*p.StartDate)
	if err != nil {
		return entities.Date{}, entities.Date{}, apperrors.NewFieldValidationError("start_date", "must be a MM/DD/YYYY date")
	}
	end, err := entities.ParseDate(*p.EndDate)
	if err != nil {
		return entities.Date{}, entities.Date{}, apperrors.NewFieldValidationError("end_date", "must be a MM/DD/YYYY date")
	}
	return start, end, nil
}

// ListOrders handles GET /orders. Customer and executor ids are resolved
// to first names where the referenced user exists.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	items, err := h.listing.ListResolved(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if items == nil {
		items = []entities.OrderListItem{}
	}
	respondWithJSON(w, http.StatusOK, items)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(true); err != nil {
		respondWithAppError(w, err)
		return
	}
	start, end, err := payload.parseDates()
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	order := &entities.Order{
		ID:          *payload.ID,
		Name:        *payload.Name,
		Description: *payload.Description,
		StartDate:   start,
		EndDate:     end,
		Address:     *payload.Address,
		Price:       *payload.Price,
		CustomerID:  *payload.CustomerID,
		ExecutorID:  *payload.ExecutorID,
	}

	if err := h.repo.Create(r.Context(), order); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, order)
}

// GetOrder handles GET /orders/{id}; references stay raw here
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	order, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var payload orderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(false); err != nil {
		respondWithAppError(w, err)
		return
	}
	start, end, err := payload.parseDates()
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	order, err := replaceByID(r.Context(), id, h.repo.GetByID, h.repo.Update, func(o *entities.Order) {
		o.Name = *payload.Name
		o.Description = *payload.Description
		o.StartDate = start
		o.EndDate = end
		o.Address = *payload.Address
		o.Price = *payload.Price
		o.CustomerID = *payload.CustomerID
		o.ExecutorID = *payload.ExecutorID
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/{id}. Offers referencing the order
// are intentionally left in place.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
