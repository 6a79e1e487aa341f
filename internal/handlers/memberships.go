package handlers

import (
	"net/http"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

// membershipIDs parses the {id} and {userId} parameters of member routes.
func membershipIDs(r *http.Request) (groupID, userID uint, err error) {
	if groupID, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if userID, err = pathID(r, "userId"); err != nil {
		return 0, 0, err
	}
	return groupID, userID, nil
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows, err := h.services.Memberships.ListByGroup(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	groupID, userID, err := membershipIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	row, err := h.services.Memberships.Get(r.Context(), groupID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// AddMember adds a user to the group in the path. A groupId in the body is ignored.
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in models.UserGroupInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	groupID := int64(id)
	in.GroupID = &groupID
	row, err := h.services.Memberships.Add(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

type moderatorRequest struct {
	IsMod *bool `json:"isMod"`
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	groupID, userID, err := membershipIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req moderatorRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.IsMod == nil {
		h.writeError(w, r, apperror.NewValidation("isMod is required"))
		return
	}
	row, err := h.services.Memberships.SetModerator(r.Context(), groupID, userID, *req.IsMod)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, userID, err := membershipIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.services.Memberships.Remove(r.Context(), groupID, userID); err != nil {
		h.writeError(w, r, err)
		return
	}
	deleted(w, "Membership")
}
