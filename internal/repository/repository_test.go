package repository

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"gorm.io/gorm"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/database"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

func newTestStore(c *qt.C) *Store {
	c.Helper()
	db, err := database.OpenSQLite(filepath.Join(c.TempDir(), "store.db"))
	c.Assert(err, qt.IsNil)
	c.Assert(database.Migrate(db), qt.IsNil)
	c.Cleanup(func() { database.Close(db) })
	return New(db)
}

func seedUser(c *qt.C, s *Store, name string) *models.User {
	c.Helper()
	user := &models.User{
		Name:         name,
		Pseudo:       name,
		Email:        name + "@gaming.com",
		PasswordHash: "hash-" + name,
		Country:      models.CountryFrance,
		BirthDate:    time.Date(1999, time.May, 4, 0, 0, 0, 0, time.UTC),
		NumTel:       "+33612345678",
	}
	c.Assert(s.Users().Create(context.Background(), user), qt.IsNil)
	return user
}

func TestParseID(t *testing.T) {
	c := qt.New(t)

	id, err := ParseID("42")
	c.Assert(err, qt.IsNil)
	c.Assert(id, qt.Equals, uint(42))

	id, err = ParseID("9223372036854775807")
	c.Assert(err, qt.IsNil)
	c.Assert(uint64(id), qt.Equals, uint64(math.MaxInt64))

	for _, raw := range []string{"", "0", "-1", "abc", "1.5", "12abc", "9223372036854775808", "18446744073709551615"} {
		_, err := ParseID(raw)
		var verr *apperror.ValidationError
		c.Assert(errors.As(err, &verr), qt.IsTrue, qt.Commentf("raw %q", raw))
		c.Assert(verr.Kind, qt.Equals, apperror.KindBadID)
	}
}

func TestUsers(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := newTestStore(c)

	jean := seedUser(c, s, "jean")
	c.Assert(jean.ID, qt.Not(qt.Equals), uint(0))

	got, err := s.Users().GetByID(ctx, jean.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Email, qt.Equals, "jean@gaming.com")
	c.Assert(got.BirthDate.Format(time.DateOnly), qt.Equals, "1999-05-04")

	got, err = s.Users().GetByID(ctx, 999)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)

	byEmail, err := s.Users().FindUserByEmail(ctx, "jean@gaming.com")
	c.Assert(err, qt.IsNil)
	c.Assert(byEmail.ID, qt.Equals, jean.ID)
	byName, err := s.Users().FindUserByName(ctx, "nobody")
	c.Assert(err, qt.IsNil)
	c.Assert(byName, qt.IsNil)

	err = s.Users().Update(ctx, jean.ID, &models.User{
		Name:      "jean_d",
		Pseudo:    "JeanD",
		Email:     "jean.d@gaming.com",
		Country:   models.CountryBelgique,
		BirthDate: jean.BirthDate,
		NumTel:    "+32476123456",
	})
	c.Assert(err, qt.IsNil)
	got, err = s.Users().GetByID(ctx, jean.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Name, qt.Equals, "jean_d")
	c.Assert(got.Country, qt.Equals, models.CountryBelgique)
	c.Assert(got.PasswordHash, qt.Equals, "hash-jean")

	err = s.Users().Update(ctx, 999, &models.User{Name: "ghost"})
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), qt.IsTrue)

	c.Assert(s.Users().Delete(ctx, jean.ID), qt.IsNil)
	c.Assert(errors.Is(s.Users().Delete(ctx, jean.ID), gorm.ErrRecordNotFound), qt.IsTrue)
}

func TestUsersUniqueEmail(t *testing.T) {
	c := qt.New(t)
	s := newTestStore(c)

	seedUser(c, s, "jean")
	dup := &models.User{Name: "other", Pseudo: "other", Email: "jean@gaming.com", Country: models.CountryFrance, NumTel: "+33612345678"}
	c.Assert(s.Users().Create(context.Background(), dup), qt.Not(qt.IsNil))
}

func TestGroups(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := newTestStore(c)
	owner := seedUser(c, s, "owner")

	group := &models.Group{Name: "Raiders", IsPublic: true, OwnerID: owner.ID}
	c.Assert(s.Groups().Create(ctx, group), qt.IsNil)

	err := s.Groups().Update(ctx, group.ID, &models.Group{Name: "Raiders", IsPublic: false, OwnerID: owner.ID})
	c.Assert(err, qt.IsNil)
	got, err := s.Groups().GetByID(ctx, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.IsPublic, qt.IsFalse)
	c.Assert(got.Description, qt.Equals, "")

	locked, err := s.Groups().Lock(ctx, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(locked.Name, qt.Equals, "Raiders")

	n, err := s.Groups().CountByOwner(ctx, owner.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(1))

	err = s.Groups().Update(ctx, 999, &models.Group{Name: "Ghosts", OwnerID: owner.ID})
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), qt.IsTrue)

	// The owner cannot go while it still owns a group.
	c.Assert(s.Users().Delete(ctx, owner.ID), qt.Not(qt.IsNil))

	c.Assert(s.Groups().Delete(ctx, group.ID), qt.IsNil)
	got, err = s.Groups().GetByID(ctx, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)
}

func TestGroupOwnerMustExist(t *testing.T) {
	c := qt.New(t)
	s := newTestStore(c)

	err := s.Groups().Create(context.Background(), &models.Group{Name: "Orphans", OwnerID: 404})
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestMemberships(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := newTestStore(c)
	owner := seedUser(c, s, "owner")
	member := seedUser(c, s, "member")
	group := &models.Group{Name: "Raiders", IsPublic: true, OwnerID: owner.ID}
	c.Assert(s.Groups().Create(ctx, group), qt.IsNil)

	c.Assert(s.Memberships().Create(ctx, &models.UserGroup{UserID: owner.ID, GroupID: group.ID, IsMod: true}), qt.IsNil)
	c.Assert(s.Memberships().Upsert(ctx, &models.UserGroup{UserID: member.ID, GroupID: group.ID}), qt.IsNil)

	row, err := s.Memberships().Get(ctx, member.ID, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(row.IsMod, qt.IsFalse)
	c.Assert(row.JoinedAt.IsZero(), qt.IsFalse)

	// Upsert on an existing pair only flips the flag.
	c.Assert(s.Memberships().Upsert(ctx, &models.UserGroup{UserID: member.ID, GroupID: group.ID, IsMod: true}), qt.IsNil)
	rows, err := s.Memberships().ListByGroup(ctx, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 2)
	c.Assert(rows[1].IsMod, qt.IsTrue)

	c.Assert(s.Memberships().Update(ctx, member.ID, group.ID, false), qt.IsNil)
	row, err = s.Memberships().Get(ctx, member.ID, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(row.IsMod, qt.IsFalse)

	err = s.Memberships().Update(ctx, 999, group.ID, true)
	c.Assert(errors.Is(err, gorm.ErrRecordNotFound), qt.IsTrue)

	// A second row for the same pair is refused.
	c.Assert(s.Memberships().Create(ctx, &models.UserGroup{UserID: member.ID, GroupID: group.ID}), qt.Not(qt.IsNil))

	byUser, err := s.Memberships().ListByUser(ctx, member.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(byUser, qt.HasLen, 1)

	c.Assert(s.Memberships().Delete(ctx, member.ID, group.ID), qt.IsNil)
	c.Assert(errors.Is(s.Memberships().Delete(ctx, member.ID, group.ID), gorm.ErrRecordNotFound), qt.IsTrue)

	n, err := s.Memberships().DeleteByGroup(ctx, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(1))
	row, err = s.Memberships().Get(ctx, owner.ID, group.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(row, qt.IsNil)
}

func TestProfiles(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := newTestStore(c)
	user := seedUser(c, s, "jean")

	profile := &models.Profile{UserID: user.ID, Description: "Support main", Status: "online"}
	c.Assert(s.Profiles().Create(ctx, profile), qt.IsNil)

	c.Assert(s.Profiles().SetImage(ctx, profile.ID, "banner", "https://cdn.example/b.png"), qt.IsNil)
	err := s.Profiles().Update(ctx, profile.ID, &models.Profile{
		UserID: user.ID, Description: "Tank main", Status: "away", IsPrivate: true, Banner: "https://cdn.example/b.png",
	})
	c.Assert(err, qt.IsNil)

	got, err := s.Profiles().GetByID(ctx, profile.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Description, qt.Equals, "Tank main")
	c.Assert(got.IsPrivate, qt.IsTrue)
	c.Assert(got.Banner, qt.Equals, "https://cdn.example/b.png")

	c.Assert(errors.Is(s.Profiles().SetImage(ctx, 999, "img", "x"), gorm.ErrRecordNotFound), qt.IsTrue)

	n, err := s.Profiles().DeleteByUser(ctx, user.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(1))
	c.Assert(errors.Is(s.Profiles().Delete(ctx, profile.ID), gorm.ErrRecordNotFound), qt.IsTrue)
}

func TestTransactionRollsBack(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	s := newTestStore(c)
	owner := seedUser(c, s, "owner")

	boom := errors.New("boom")
	var groupID uint
	err := s.Transaction(ctx, func(tx *Store) error {
		group := &models.Group{Name: "Doomed", OwnerID: owner.ID}
		if err := tx.Groups().Create(ctx, group); err != nil {
			return err
		}
		groupID = group.ID
		return boom
	})
	c.Assert(err, qt.Equals, boom)
	c.Assert(groupID, qt.Not(qt.Equals), uint(0))

	got, err := s.Groups().GetByID(ctx, groupID)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)
	c.Assert(s.Ping(ctx), qt.IsNil)
}
