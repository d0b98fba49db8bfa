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

type ProfileHandler struct {
	profileService *service.ProfileService
	validate       *validator.Validate
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validate:       newValidate(),
	}
}

func (h *ProfileHandler) UpdateInterests(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var body struct {
		Interests []string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateInterests(r.Context(), callerID, userID, body.Interests)
	if err != nil {
		h.writeProfileError(w, "update interests", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var body struct {
		ProfilePictureURL string `json:"profile_picture_url" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeValidationErrors(w, err)
		return
	}

	user, err := h.profileService.UpdateProfilePicture(r.Context(), callerID, userID, body.ProfilePictureURL)
	if err != nil {
		h.writeProfileError(w, "update profile picture", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeValidationErrors(w, err)
		return
	}

	user, err := h.profileService.UpdateUser(r.Context(), callerID, input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
			return
		}
		h.writeProfileError(w, "update user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrNotProfileOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only change your own profile")
	default:
		slog.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
