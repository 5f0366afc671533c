package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already taken")
var ErrMissingParent = errors.New("referenced row does not exist")

type GormRepo struct {
	DB *gorm.DB
}

func rowExists(tx *gorm.DB, model any, id uuid.UUID) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) withContext(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}
