package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/transport"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &models.User{}, order.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingParent
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.withContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders scopes to userID when it is non-nil.
func (r *GormRepo) ListOrders(ctx context.Context, userID *uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	q := r.withContext(ctx).Model(&models.Order{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return 0, nil, err
	}

	return total, orders, nil
}

func (r *GormRepo) PatchOrder(ctx context.Context, req transport.PatchOrderRequest, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}

		if req.UserID != nil {
			ok, err := rowExists(tx, &models.User{}, *req.UserID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrMissingParent
			}
			order.UserID = *req.UserID
		}
		if req.TotalPrice != nil {
			order.TotalPrice = *req.TotalPrice
		}
		if req.Status != nil {
			order.Status = *req.Status
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes the order and its details atomically.
func (r *GormRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
}

func (r *GormRepo) CreateOrderDetail(ctx context.Context, detail *models.OrderDetail) (*models.OrderDetail, error) {
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, &models.Order{}, detail.OrderID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingParent
		}
		ok, err = rowExists(tx, &models.Item{}, detail.ItemID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMissingParent
		}
		return tx.Create(detail).Error
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *GormRepo) GetOrderDetail(ctx context.Context, id uuid.UUID) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := r.withContext(ctx).Where("id = ?", id).First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *GormRepo) ListOrderDetails(ctx context.Context, orderID uuid.UUID, offset, limit int) (int64, []models.OrderDetail, error) {
	q := r.withContext(ctx).Model(&models.OrderDetail{}).Where("order_id = ?", orderID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var details []models.OrderDetail
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&details).Error; err != nil {
		return 0, nil, err
	}

	return total, details, nil
}

func (r *GormRepo) PatchOrderDetail(ctx context.Context, req transport.PatchOrderDetailRequest, id uuid.UUID) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	err := r.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&detail).Error; err != nil {
			return err
		}

		if req.OrderID != nil {
			ok, err := rowExists(tx, &models.Order{}, *req.OrderID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrMissingParent
			}
			detail.OrderID = *req.OrderID
		}
		if req.ItemID != nil {
			ok, err := rowExists(tx, &models.Item{}, *req.ItemID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrMissingParent
			}
			detail.ItemID = *req.ItemID
		}
		if req.Quantity != nil {
			detail.Quantity = *req.Quantity
		}
		if req.Price != nil {
			detail.Price = *req.Price
		}

		return tx.Save(&detail).Error
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *GormRepo) DeleteOrderDetail(ctx context.Context, id uuid.UUID) error {
	res := r.withContext(ctx).Where("id = ?", id).Delete(&models.OrderDetail{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
