package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
)

const (
	msgDuplicate  = "a record with the same unique value already exists"
	msgReferenced = "the record references a missing entity or is still referenced"
)

// classify maps a gateway failure onto the error taxonomy. Errors that are
// already typed pass through; a write that matched no row becomes
// NotFound(entity, id).
func classify(entity string, id uint, op string, err error) error {
	if err == nil || apperror.Label(err) != "" {
		return err
	}
	var pqErr *pq.Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation":
		return apperror.Conflict(msgDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		pqErr != nil && pqErr.Code.Name() == "foreign_key_violation":
		return apperror.Conflict(msgReferenced, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(entity, id)
	default:
		return apperror.Store(entity+" "+op, err)
	}
}

// fail classifies err, records it and logs it once. Store failures log at
// error level, user-correctable failures at warn.
func (b *base) fail(ctx context.Context, entity, op string, id uint, err error) error {
	err = classify(entity, id, op, err)
	label := apperror.Label(err)
	b.metrics.failures.WithLabelValues(entity, op, label).Inc()

	level := slog.LevelWarn
	if label == "store" {
		level = slog.LevelError
	}
	b.log.Log(ctx, level, entity+" "+op+" failed", "id", id, "kind", label, "error", err)
	return err
}
