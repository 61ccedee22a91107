package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// OfferHandler handles offer-related HTTP requests
type OfferHandler struct {
	repo repositories.OfferRepository
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(repo repositories.OfferRepository) *OfferHandler {
	return &OfferHandler{repo: repo}
}

type offerRequest struct {
	ID         *int `json:"id"`
	OrderID    *int `json:"order_id"`
	ExecutorID *int `json:"executor_id"`
}

func (p *offerRequest) validate(requireID bool) error {
	if requireID && p.ID == nil {
		return apperrors.NewFieldValidationError("id", "is required")
	}
	if p.OrderID == nil {
		return apperrors.NewFieldValidationError("order_id", "is required")
	}
	if p.ExecutorID == nil {
		return apperrors.NewFieldValidationError("executor_id", "is required")
	}
	return nil
}

// ListOffers handles GET /offers
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.repo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if offers == nil {
		offers = []*entities.Offer{}
	}
	respondWithJSON(w, http.StatusOK, offers)
}

// CreateOffer handles POST /offers
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var payload offerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(true); err != nil {
		respondWithAppError(w, err)
		return
	}

	offer := &entities.Offer{
		ID:         *payload.ID,
		OrderID:    *payload.OrderID,
		ExecutorID: *payload.ExecutorID,
	}

	if err := h.repo.Create(r.Context(), offer); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, offer)
}

// GetOffer handles GET /offers/{id}
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	offer, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, offer)
}

// UpdateOffer handles PUT /offers/{id}
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var payload offerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.validate(false); err != nil {
		respondWithAppError(w, err)
		return
	}

	offer, err := replaceByID(r.Context(), id, h.repo.GetByID, h.repo.Update, func(o *entities.Offer) {
		o.OrderID = *payload.OrderID
		o.ExecutorID = *payload.ExecutorID
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /offers/{id}
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
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
