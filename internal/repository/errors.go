package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("foreign key violation")
	ErrConstraint = errors.New("constraint violation")
)

// classify tags PostgreSQL integrity errors with one of the sentinels above
// while keeping the driver error in the chain.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case "foreign_key_violation":
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	case "not_null_violation", "check_violation":
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	default:
		return err
	}
}
