package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/storefront/internal/repo"
)

// Error taxonomy surfaced to the transport layer. Handlers map these
// onto HTTP status codes.
var (
	ErrValidation = errors.New("validation")         // 422
	ErrNotFound   = errors.New("not found")          // 404
	ErrConflict   = errors.New("conflict")           // 409
	ErrReference  = errors.New("dangling reference") // 422
)

// mapRepoErr translates store-level failures into the taxonomy.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: row absent", ErrNotFound)
	case errors.Is(err, repo.ErrEmailTaken):
		return fmt.Errorf("%w: email already registered", ErrConflict)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate value for a unique column", ErrConflict)
	case errors.Is(err, repo.ErrMissingParent):
		return fmt.Errorf("%w: %v", ErrReference, err)
	default:
		return err
	}
}
