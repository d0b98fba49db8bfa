package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/service"
	"github.com/vedran77/barter/internal/transport/http/middleware"
)

type OfferHandler struct {
	offerService *service.OfferService
	validate     *validator.Validate
}

func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		validate:     newValidate(),
	}
}

func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.CreateOfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeValidationErrors(w, err)
		return
	}

	offer, err := h.offerService.Create(r.Context(), callerID, input)
	if err != nil {
		h.writeOfferError(w, "create offer", err)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	offer, err := h.offerService.GetByID(r.Context(), id)
	if err != nil {
		h.writeOfferError(w, "get offer", err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.UpdateOfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeValidationErrors(w, err)
		return
	}

	offer, err := h.offerService.Update(r.Context(), callerID, input)
	if err != nil {
		h.writeOfferError(w, "update offer", err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	offer, err := h.offerService.Accept(r.Context(), callerID, id)
	if err != nil {
		h.writeOfferError(w, "accept offer", err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Reject(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	offer, err := h.offerService.Reject(r.Context(), callerID, id)
	if err != nil {
		h.writeOfferError(w, "reject offer", err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	if err := h.offerService.Delete(r.Context(), callerID, id); err != nil {
		h.writeOfferError(w, "delete offer", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Offer deleted successfully"})
}

func (h *OfferHandler) writeOfferError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrOfferNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Offer not found")
	case errors.Is(err, service.ErrNotOfferSender):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only send offers as yourself")
	case errors.Is(err, service.ErrNotOfferRecipient):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the offer recipient can answer it")
	case errors.Is(err, service.ErrNotOfferParty):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not a party to this offer")
	default:
		slog.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
