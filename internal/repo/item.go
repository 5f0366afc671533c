package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/transport"
)

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &models.User{}, item.OwnerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingParent
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.withContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems scopes to ownerID when it is non-nil.
func (r *GormRepo) ListItems(ctx context.Context, ownerID *uuid.UUID, offset, limit int) (int64, []models.Item, error) {
	q := r.withContext(ctx).Model(&models.Item{})
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Item
	if err := q.Order("title ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) PatchItem(ctx context.Context, req transport.PatchItemRequest, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.withContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if err := r.withContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res := r.withContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
