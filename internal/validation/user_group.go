package validation

import (
	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

const (
	MsgMemberUserIDRequired  = "user id is required"
	MsgMemberUserIDPositive  = "user id must be a positive integer"
	MsgMemberGroupIDRequired = "group id is required"
	MsgMemberGroupIDPositive = "group id must be a positive integer"
)

var userGroupMessages = messageTable{
	"userId.required":  MsgMemberUserIDRequired,
	"userId.gt":        MsgMemberUserIDPositive,
	"groupId.required": MsgMemberGroupIDRequired,
	"groupId.gt":       MsgMemberGroupIDPositive,
}

// UserGroup validates a membership record. The moderator flag defaults to false.
func UserGroup(in models.UserGroupInput) (*models.UserGroup, error) {
	if msgs := check(in, userGroupMessages); len(msgs) > 0 {
		return nil, apperror.NewValidation(msgs...)
	}
	membership := &models.UserGroup{
		UserID:  uint(*in.UserID),
		GroupID: uint(*in.GroupID),
	}
	if in.IsMod != nil {
		membership.IsMod = *in.IsMod
	}
	return membership, nil
}
