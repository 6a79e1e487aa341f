package services

import (
	"context"
	"errors"
	"io"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
)

const entityProfile = "profile"

// ErrUploadsDisabled is returned by SetImage when no uploader is configured.
var ErrUploadsDisabled = errors.New("image uploads are not configured")

// Image kinds accepted by SetImage, named after the profile columns they fill.
const (
	ImageAvatar = "img"
	ImageBanner = "banner"
)

type ProfileService struct {
	base
	uploader Uploader
	folder   string
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.store.Profiles().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "list", 0, err)
	}
	return profiles, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	profile, err := s.store.Profiles().GetByID(ctx, id)
	if err == nil && profile == nil {
		err = apperror.NotFound(entityProfile, id)
	}
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "get", id, err)
	}
	return profile, nil
}

func (s *ProfileService) Create(ctx context.Context, in models.ProfileInput) (*models.Profile, error) {
	profile, err := validation.Profile(in)
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "create", 0, err)
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := requireUser(ctx, tx, profile.UserID); err != nil {
			return err
		}
		return tx.Profiles().Create(ctx, profile)
	})
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "create", 0, err)
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, id uint, in models.ProfileInput) (*models.Profile, error) {
	var updated *models.Profile
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Profiles().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entityProfile, id)
		}
		patch, err := validation.Profile(in)
		if err != nil {
			return err
		}
		if err := requireUser(ctx, tx, patch.UserID); err != nil {
			return err
		}
		if err := tx.Profiles().Update(ctx, id, patch); err != nil {
			return err
		}
		updated, err = tx.Profiles().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "update", id, err)
	}
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Profiles().Delete(ctx, id); err != nil {
		return s.fail(ctx, entityProfile, "delete", id, err)
	}
	return nil
}

// UploadsEnabled reports whether SetImage has an uploader to send images to.
func (s *ProfileService) UploadsEnabled() bool {
	return s.uploader != nil
}

// SetImage uploads image and stores its URL in the column named by kind.
func (s *ProfileService) SetImage(ctx context.Context, id uint, kind string, image io.Reader) (*models.Profile, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	if kind != ImageAvatar && kind != ImageBanner {
		return nil, s.fail(ctx, entityProfile, "set image", id, apperror.NewValidation("image kind must be img or banner"))
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, image, s.folder)
	if err != nil {
		return nil, s.fail(ctx, entityProfile, "set image", id, apperror.Store("upload image", err))
	}
	if err := s.store.Profiles().SetImage(ctx, id, kind, url); err != nil {
		return nil, s.fail(ctx, entityProfile, "set image", id, err)
	}
	return s.GetByID(ctx, id)
}
