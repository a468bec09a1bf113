package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskrewards/internal/domain"
)

// translate maps storage-level failures onto domain errors. Context
// expiration and cancellation surface as retryable transient failures.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domain.ErrTransient
	default:
		return err
	}
}
