package services

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
	"github.com/AnshRaj112/guildhall-backend/pkg/utils"
)

func TestCreateUserHashesPassword(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c, nil)

	user := f.user(c, "jean_123")
	c.Assert(user.PasswordHash, qt.Not(qt.Equals), "")
	c.Assert(user.PasswordHash, qt.Not(qt.Equals), "Password123!")

	stored, err := f.svc.Users.GetByID(context.Background(), user.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(utils.VerifyPassword("Password123!", stored.PasswordHash), qt.IsTrue)
}

func TestCreateUserDuplicates(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c, nil)
	f.user(c, "jean")

	in := userInput("jean")
	in.Password = "Password123!"
	_, err := f.svc.Users.Create(context.Background(), in)
	assertKind(c, err, "invalid")
	c.Assert(apperror.Messages(err), qt.DeepEquals, []string{
		validation.MsgUsernameTaken,
		validation.MsgEmailTaken,
		validation.MsgPseudoTaken,
		validation.MsgPasswordReused,
	})
}

func TestUpdateUser(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newFixture(c, nil)
	user := f.user(c, "jean")

	in := userInput("jean")
	in.Password = ""
	in.Pseudo = "Jean.D"
	in.Country = "Suisse"
	in.NumTel = "+41791234567"
	updated, err := f.svc.Users.Update(ctx, user.ID, in)
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Pseudo, qt.Equals, "Jean.D")
	c.Assert(updated.Country, qt.Equals, models.CountrySuisse)
	c.Assert(updated.PasswordHash, qt.Equals, user.PasswordHash)

	in.Password = "Newpass456?"
	updated, err = f.svc.Users.Update(ctx, user.ID, in)
	c.Assert(err, qt.IsNil)
	c.Assert(utils.VerifyPassword("Newpass456?", updated.PasswordHash), qt.IsTrue)

	// Reusing the current password is reported.
	_, err = f.svc.Users.Update(ctx, user.ID, in)
	c.Assert(apperror.Messages(err), qt.DeepEquals, []string{validation.MsgPasswordReused})

	_, err = f.svc.Users.Update(ctx, 999, in)
	assertKind(c, err, "not-found")
}

func TestDeleteUser(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newFixture(c, nil)
	alice := f.user(c, "alice")
	bob := f.user(c, "bob")
	group := f.group(c, "Raiders", alice.ID)
	f.member(c, group.ID, bob.ID)
	_, err := f.svc.Profiles.Create(ctx, models.ProfileInput{
		UserID:      ptr(int64(bob.ID)),
		Description: "Healer",
		IsPrivate:   ptr(false),
		Status:      "online",
	})
	c.Assert(err, qt.IsNil)

	err = f.svc.Users.Delete(ctx, alice.ID)
	assertKind(c, err, "conflict")
	c.Assert(err, qt.ErrorMatches, "user still owns 1 group\\(s\\)")

	c.Assert(f.svc.Users.Delete(ctx, bob.ID), qt.IsNil)
	_, err = f.svc.Users.GetByID(ctx, bob.ID)
	assertKind(c, err, "not-found")
	c.Assert(f.membership(c, bob.ID, group.ID), qt.IsNil)
	profiles, err := f.svc.Profiles.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(profiles, qt.HasLen, 0)

	err = f.svc.Users.Delete(ctx, bob.ID)
	assertKind(c, err, "not-found")
}
