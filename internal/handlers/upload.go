package handlers

import (
	"net/http"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/services"
)

const maxImageBytes = 10 << 20

// UploadProfileImage stores the multipart "file" field as the profile's
// avatar (?kind=img) or banner (?kind=banner).
func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.services.Profiles.UploadsEnabled() {
		h.writeError(w, r, services.ErrUploadsDisabled)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		h.writeError(w, r, apperror.NewValidation("failed to parse form: "+err.Error()))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, apperror.NewValidation("no file provided"))
		return
	}
	defer file.Close()

	profile, err := h.services.Profiles.SetImage(r.Context(), id, r.URL.Query().Get("kind"), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
