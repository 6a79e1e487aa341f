package validation

import (
	"strings"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

const (
	MsgProfileDescriptionRequired = "description is required"
	MsgProfileStatusRequired      = "status is required"
	MsgProfileUserIDInvalid       = "invalid user id"
	MsgProfilePrivacyRequired     = "profile privacy must be a boolean"
)

var profileMessages = messageTable{
	"userId.required":      MsgProfileUserIDInvalid,
	"userId.gt":            MsgProfileUserIDInvalid,
	"description.required": MsgProfileDescriptionRequired,
	"isPrivate.required":   MsgProfilePrivacyRequired,
	"status.required":      MsgProfileStatusRequired,
}

// Profile validates a profile record.
func Profile(in models.ProfileInput) (*models.Profile, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Status = strings.TrimSpace(in.Status)
	if msgs := check(in, profileMessages); len(msgs) > 0 {
		return nil, apperror.NewValidation(msgs...)
	}
	return &models.Profile{
		UserID:       uint(*in.UserID),
		Description:  in.Description,
		Img:          strings.TrimSpace(in.Img),
		ConnectionID: strings.TrimSpace(in.ConnectionID),
		IsPrivate:    *in.IsPrivate,
		Status:       in.Status,
		Banner:       strings.TrimSpace(in.Banner),
	}, nil
}
