package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/transport"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.withContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		// A concurrent insert can slip between the lookup and the
		// create; the unique index catches it.
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.withContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.withContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	var total int64
	if err := r.withContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var users []models.User
	if err := r.withContext(ctx).Model(&models.User{}).
		Order("email ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return 0, nil, err
	}

	return total, users, nil
}

// PatchUser applies the non-nil fields of req; hashed, when set,
// replaces the stored password hash. A changed email is re-checked for
// uniqueness inside the transaction.
func (r *GormRepo) PatchUser(ctx context.Context, req transport.PatchUserRequest, hashed *string, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			return err
		}

		if req.Email != nil && *req.Email != user.Email {
			var n int64
			if err := tx.Model(&models.User{}).Where("email = ?", *req.Email).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrEmailTaken
			}
			user.Email = *req.Email
		}
		if hashed != nil {
			user.HashedPassword = *hashed
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.IsSuperuser != nil {
			user.IsSuperuser = *req.IsSuperuser
		}
		if req.FullName != nil {
			user.FullName = req.FullName
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with its items, orders, and the
// order details of those orders, atomically.
func (r *GormRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).First(&models.User{})
		if res.Error != nil {
			return res.Error
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}
