package handlers

import (
	"net/http"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.Profiles.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.services.Profiles.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var in models.ProfileInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.services.Profiles.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in models.ProfileInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.services.Profiles.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.services.Profiles.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	deleted(w, "Profile")
}
