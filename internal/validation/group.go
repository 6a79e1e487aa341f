package validation

import (
	"strings"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

const (
	MsgGroupNameTooShort       = "group name must contain at least 2 characters"
	MsgGroupNameTooLong        = "group name cannot exceed 100 characters"
	MsgGroupDescriptionTooLong = "description cannot exceed 1000 characters"
	MsgOwnerIDRequired         = "user id is required"
	MsgOwnerIDPositive         = "user id must be a positive integer"
)

var groupMessages = messageTable{
	"name.min":         MsgGroupNameTooShort,
	"name.max":         MsgGroupNameTooLong,
	"description.max":  MsgGroupDescriptionTooLong,
	"ownerId.required": MsgOwnerIDRequired,
	"ownerId.gt":       MsgOwnerIDPositive,
}

// Group validates a group record. Visibility defaults to public when absent.
func Group(in models.GroupInput) (*models.Group, error) {
	in.Name = strings.TrimSpace(in.Name)
	if msgs := check(in, groupMessages); len(msgs) > 0 {
		return nil, apperror.NewValidation(msgs...)
	}

	group := &models.Group{
		Name:     in.Name,
		IsPublic: true,
		OwnerID:  uint(*in.OwnerID),
	}
	if in.Description != nil {
		group.Description = *in.Description
	}
	if in.IsPublic != nil {
		group.IsPublic = *in.IsPublic
	}
	return group, nil
}
