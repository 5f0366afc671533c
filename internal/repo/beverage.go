package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/transport"
)

func (r *GormRepo) CreateBeverage(ctx context.Context, bev *models.Beverage) (*models.Beverage, error) {
	if err := r.withContext(ctx).Create(bev).Error; err != nil {
		return nil, err
	}
	return bev, nil
}

func (r *GormRepo) GetBeverage(ctx context.Context, id uuid.UUID) (*models.Beverage, error) {
	var bev models.Beverage
	if err := r.withContext(ctx).Where("id = ?", id).First(&bev).Error; err != nil {
		return nil, err
	}
	return &bev, nil
}

func (r *GormRepo) ListBeverages(ctx context.Context, offset, limit int) (int64, []models.Beverage, error) {
	var total int64
	if err := r.withContext(ctx).Model(&models.Beverage{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var bevs []models.Beverage
	if err := r.withContext(ctx).Model(&models.Beverage{}).
		Order("name ASC").Offset(offset).Limit(limit).Find(&bevs).Error; err != nil {
		return 0, nil, err
	}

	return total, bevs, nil
}

func (r *GormRepo) PatchBeverage(ctx context.Context, req transport.PatchBeverageRequest, id uuid.UUID) (*models.Beverage, error) {
	var bev models.Beverage
	if err := r.withContext(ctx).Where("id = ?", id).First(&bev).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		bev.Name = *req.Name
	}
	if req.Description != nil {
		bev.Description = req.Description
	}
	if req.Price != nil {
		bev.Price = *req.Price
	}
	if req.Inventory != nil {
		bev.Inventory = *req.Inventory
	}

	if err := r.withContext(ctx).Save(&bev).Error; err != nil {
		return nil, err
	}
	return &bev, nil
}

func (r *GormRepo) DeleteBeverage(ctx context.Context, id uuid.UUID) error {
	res := r.withContext(ctx).Where("id = ?", id).Delete(&models.Beverage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
