package validation

import (
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

func ptr[T any](v T) *T { return &v }

func messagesOf(c *qt.C, err error) []string {
	c.Helper()
	var verr *apperror.ValidationError
	c.Assert(errors.As(err, &verr), qt.IsTrue, qt.Commentf("got %v", err))
	return verr.Messages
}

func TestGroupDefaultsToPublic(t *testing.T) {
	c := qt.New(t)

	group, err := Group(models.GroupInput{Name: "  Raiders  ", OwnerID: ptr[int64](1)})
	c.Assert(err, qt.IsNil)
	c.Assert(group.Name, qt.Equals, "Raiders")
	c.Assert(group.IsPublic, qt.IsTrue)
	c.Assert(group.OwnerID, qt.Equals, uint(1))
	c.Assert(group.Description, qt.Equals, "")
}

func TestGroupKeepsExplicitValues(t *testing.T) {
	c := qt.New(t)

	group, err := Group(models.GroupInput{
		Name:        "Night owls",
		Description: ptr("late sessions only"),
		IsPublic:    ptr(false),
		OwnerID:     ptr[int64](7),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(group.IsPublic, qt.IsFalse)
	c.Assert(group.Description, qt.Equals, "late sessions only")
}

func TestGroupNameLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", MsgGroupNameTooShort},
		{"one char", "G", MsgGroupNameTooShort},
		{"blank padded", "  G  ", MsgGroupNameTooShort},
		{"too long", strings.Repeat("g", 101), MsgGroupNameTooLong},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			_, err := Group(models.GroupInput{Name: test.in, OwnerID: ptr[int64](1)})
			c.Assert(messagesOf(c, err), qt.DeepEquals, []string{test.want})
		})
	}
}

func TestGroupNameBounds(t *testing.T) {
	c := qt.New(t)

	for _, name := range []string{"GG", strings.Repeat("g", 100), "éé"} {
		_, err := Group(models.GroupInput{Name: name, OwnerID: ptr[int64](1)})
		c.Assert(err, qt.IsNil, qt.Commentf("name %q", name))
	}
}

func TestGroupCollectsEveryViolation(t *testing.T) {
	c := qt.New(t)

	_, err := Group(models.GroupInput{
		Name:        "G",
		Description: ptr(strings.Repeat("d", 1001)),
	})
	c.Assert(messagesOf(c, err), qt.DeepEquals, []string{
		MsgGroupNameTooShort,
		MsgGroupDescriptionTooLong,
		MsgOwnerIDRequired,
	})
	c.Assert(err, qt.ErrorMatches, MsgGroupNameTooShort+", "+MsgGroupDescriptionTooLong+", "+MsgOwnerIDRequired)
}

func TestGroupOwnerMustBePositive(t *testing.T) {
	c := qt.New(t)

	_, err := Group(models.GroupInput{Name: "Raiders", OwnerID: ptr[int64](-3)})
	c.Assert(messagesOf(c, err), qt.DeepEquals, []string{MsgOwnerIDPositive})
}

func TestUserGroupDefaultsToMember(t *testing.T) {
	c := qt.New(t)

	membership, err := UserGroup(models.UserGroupInput{UserID: ptr[int64](2), GroupID: ptr[int64](3)})
	c.Assert(err, qt.IsNil)
	c.Assert(membership.IsMod, qt.IsFalse)
	c.Assert(membership.UserID, qt.Equals, uint(2))
	c.Assert(membership.GroupID, qt.Equals, uint(3))
}

func TestUserGroupRequiresBothIDs(t *testing.T) {
	c := qt.New(t)

	_, err := UserGroup(models.UserGroupInput{GroupID: ptr[int64](0), IsMod: ptr(true)})
	c.Assert(messagesOf(c, err), qt.DeepEquals, []string{MsgMemberUserIDRequired, MsgMemberGroupIDPositive})
}

func TestProfile(t *testing.T) {
	c := qt.New(t)

	profile, err := Profile(models.ProfileInput{
		UserID:      ptr[int64](5),
		Description: "Support main",
		IsPrivate:   ptr(false),
		Status:      "online",
		Banner:      " https://cdn.example/banner.png ",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(profile.UserID, qt.Equals, uint(5))
	c.Assert(profile.IsPrivate, qt.IsFalse)
	c.Assert(profile.Banner, qt.Equals, "https://cdn.example/banner.png")
}

func TestProfileRequiredFields(t *testing.T) {
	c := qt.New(t)

	_, err := Profile(models.ProfileInput{Description: "   "})
	c.Assert(messagesOf(c, err), qt.DeepEquals, []string{
		MsgProfileUserIDInvalid,
		MsgProfileDescriptionRequired,
		MsgProfilePrivacyRequired,
		MsgProfileStatusRequired,
	})
}
