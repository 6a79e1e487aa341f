// Package services is the orchestration layer: each operation validates its
// input, runs the gateway calls (inside one transaction when it writes more
// than one row) and returns a typed failure from internal/apperror.
package services

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
)

// Options configures New. Zero values pick defaults.
type Options struct {
	Logger     *slog.Logger
	Metrics    *Collector
	BcryptCost int
	Uploader   Uploader // nil disables profile image uploads
	Folder     string   // upload folder for profile images
}

// Services bundles the per-entity services sharing one store.
type Services struct {
	Users       *UserService
	Groups      *GroupService
	Profiles    *ProfileService
	Memberships *MembershipService
}

// base is what every service shares.
type base struct {
	store   *repository.Store
	log     *slog.Logger
	metrics *Collector
}

func New(store *repository.Store, opts Options) *Services {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetricsCollector()
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	b := base{store: store, log: opts.Logger, metrics: opts.Metrics}
	return &Services{
		Users: &UserService{
			base:       b,
			validator:  validation.NewUserValidator(store.Users()),
			bcryptCost: opts.BcryptCost,
		},
		Groups:      &GroupService{base: b},
		Profiles:    &ProfileService{base: b, uploader: opts.Uploader, folder: opts.Folder},
		Memberships: &MembershipService{base: b},
	}
}
