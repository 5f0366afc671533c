package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/repo"
	"github.com/example/storefront/internal/transport"
)

// Order money fields are decimal(10,2).
const (
	orderPriceDigits = 10
	orderPricePlaces = 2
)

const defaultOrderStatus = "pending"

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}

	total := decimal.Zero
	if req.TotalPrice != nil {
		if err := validatePrice("total_price", *req.TotalPrice, orderPriceDigits, orderPricePlaces); err != nil {
			return nil, err
		}
		total = *req.TotalPrice
	}

	status := defaultOrderStatus
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		status = *req.Status
	}

	order := models.Order{
		UserID:     req.UserID,
		TotalPrice: total,
		Status:     status,
	}

	created, err := s.Repo.CreateOrder(ctx, &order)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID *uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	total, orders, err := s.Repo.ListOrders(ctx, userID, offset, limit)
	if err != nil {
		return 0, nil, mapRepoErr(err)
	}
	return total, orders, nil
}

func (s *OrderService) PatchOrder(ctx context.Context, req transport.PatchOrderRequest, id uuid.UUID) (*models.Order, error) {
	if req.UserID != nil && *req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id must not be empty", ErrValidation)
	}
	if req.TotalPrice != nil {
		if err := validatePrice("total_price", *req.TotalPrice, orderPriceDigits, orderPricePlaces); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	order, err := s.Repo.PatchOrder(ctx, req, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func (s *OrderService) CreateOrderDetail(ctx context.Context, req transport.CreateOrderDetailRequest) (*models.OrderDetail, error) {
	if req.OrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: order_id required", ErrValidation)
	}
	if req.ItemID == uuid.Nil {
		return nil, fmt.Errorf("%w: item_id required", ErrValidation)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	price := decimal.Zero
	if req.Price != nil {
		if err := validatePrice("price", *req.Price, orderPriceDigits, orderPricePlaces); err != nil {
			return nil, err
		}
		price = *req.Price
	}

	detail := models.OrderDetail{
		OrderID:  req.OrderID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Price:    price,
	}

	created, err := s.Repo.CreateOrderDetail(ctx, &detail)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *OrderService) GetOrderDetail(ctx context.Context, id uuid.UUID) (*models.OrderDetail, error) {
	detail, err := s.Repo.GetOrderDetail(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return detail, nil
}

func (s *OrderService) ListOrderDetails(ctx context.Context, orderID uuid.UUID, offset, limit int) (int64, []models.OrderDetail, error) {
	total, details, err := s.Repo.ListOrderDetails(ctx, orderID, offset, limit)
	if err != nil {
		return 0, nil, mapRepoErr(err)
	}
	return total, details, nil
}

func (s *OrderService) PatchOrderDetail(ctx context.Context, req transport.PatchOrderDetailRequest, id uuid.UUID) (*models.OrderDetail, error) {
	if req.OrderID != nil && *req.OrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: order_id must not be empty", ErrValidation)
	}
	if req.ItemID != nil && *req.ItemID == uuid.Nil {
		return nil, fmt.Errorf("%w: item_id must not be empty", ErrValidation)
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if req.Price != nil {
		if err := validatePrice("price", *req.Price, orderPriceDigits, orderPricePlaces); err != nil {
			return nil, err
		}
	}

	detail, err := s.Repo.PatchOrderDetail(ctx, req, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return detail, nil
}

func (s *OrderService) DeleteOrderDetail(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteOrderDetail(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
