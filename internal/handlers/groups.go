package handlers

import (
	"net/http"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.Groups.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	group, err := h.services.Groups.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// CreateGroup creates a group and makes its owner the moderator.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var in models.GroupInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	group, err := h.services.Groups.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

// UpdateGroup replaces a group. Changing ownerId moves the moderator role.
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in models.GroupInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	group, err := h.services.Groups.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// DeleteGroup deletes a group together with its memberships.
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.services.Groups.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	deleted(w, "Group")
}
