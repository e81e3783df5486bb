package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nutripal/profile-backend/internal/middleware"
	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	timeout  time.Duration
}

func NewProfileHandler(profiles *services.ProfileService, timeout time.Duration) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, timeout: timeout}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	prof, err := h.profiles.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewMessageResponse("Profile not found"))
			return
		}
		h.serverError(w, r, "GetProfile", uid, "Error fetching profile", err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

// CreateProfile expects ParseProfileForm and VerifyUser to have run.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	input := middleware.GetProfileInput(r.Context())
	file := middleware.GetStagedFile(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	prof, err := h.profiles.Create(ctx, input, file)
	if err != nil {
		h.serverError(w, r, "CreateProfile", input.UID, "Error creating profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, models.NewProfileResponse("Profile created successfully", prof))
}

// UpdateProfile expects ParseProfileForm to have run. The uid in the path
// is not checked against the identity provider.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	input := middleware.GetProfileInput(r.Context())
	file := middleware.GetStagedFile(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	prof, err := h.profiles.Update(ctx, uid, input, file)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewMessageResponse("Profile not found"))
			return
		}
		h.serverError(w, r, "UpdateProfile", uid, "Error updating profile", err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewProfileResponse("Profile updated successfully", prof))
}

// serverError logs the raw error and answers with a sanitized code.
func (h *ProfileHandler) serverError(w http.ResponseWriter, r *http.Request, op, uid, message string, err error) {
	log.Printf("[%s] request=%s uid=%s error=%v", op, chimw.GetReqID(r.Context()), uid, err)

	code := models.ErrCodeInternal
	if errors.Is(err, services.ErrUploadFailed) {
		code = models.ErrCodeUploadFailed
	}
	writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(message, code))
}
