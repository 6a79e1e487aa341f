// Package repository is the persistence gateway: one CRUD surface per entity
// over a single gorm handle, plus a unit of work for multi-entity sequences.
//
// GetByID and the Find lookups return nil, nil when no row matches. Writes
// return the store's error unchanged, with gorm.ErrRecordNotFound when an
// update or delete matched no row.
package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
)

// Store is the injected store-connection capability.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() UserRepository             { return UserRepository{db: s.db} }
func (s *Store) Groups() GroupRepository           { return GroupRepository{db: s.db} }
func (s *Store) Profiles() ProfileRepository       { return ProfileRepository{db: s.db} }
func (s *Store) Memberships() MembershipRepository { return MembershipRepository{db: s.db} }

// Transaction runs fn against a Store bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Ping checks the connection pool.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ParseID parses a path id. Anything but a positive decimal integer that fits
// a signed 64-bit column is a bad-id validation error.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, apperror.BadID(raw)
	}
	return uint(id), nil
}

// first loads the row matching conds into dest, mapping "no row" to false.
func first(db *gorm.DB, dest any, conds ...any) (bool, error) {
	err := db.Take(dest, conds...).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

// affected turns a write that matched no row into gorm.ErrRecordNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
