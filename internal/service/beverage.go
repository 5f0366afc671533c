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

// Beverage prices are decimal(5,3); see validatePrice.
const (
	beveragePriceDigits = 5
	beveragePricePlaces = 3
)

type BeverageService struct {
	Repo *repo.GormRepo
}

func (s *BeverageService) CreateBeverage(ctx context.Context, req transport.CreateBeverageRequest) (*models.Beverage, error) {
	if err := validateName("name", req.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if req.Inventory < 0 {
		return nil, fmt.Errorf("%w: inventory must not be negative", ErrValidation)
	}

	price := decimal.Zero
	if req.Price != nil {
		if err := validatePrice("price", *req.Price, beveragePriceDigits, beveragePricePlaces); err != nil {
			return nil, err
		}
		price = *req.Price
	}

	bev := models.Beverage{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Inventory:   req.Inventory,
	}

	created, err := s.Repo.CreateBeverage(ctx, &bev)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *BeverageService) GetBeverage(ctx context.Context, id uuid.UUID) (*models.Beverage, error) {
	bev, err := s.Repo.GetBeverage(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return bev, nil
}

func (s *BeverageService) ListBeverages(ctx context.Context, offset, limit int) (int64, []models.Beverage, error) {
	total, bevs, err := s.Repo.ListBeverages(ctx, offset, limit)
	if err != nil {
		return 0, nil, mapRepoErr(err)
	}
	return total, bevs, nil
}

func (s *BeverageService) PatchBeverage(ctx context.Context, req transport.PatchBeverageRequest, id uuid.UUID) (*models.Beverage, error) {
	if req.Name != nil {
		if err := validateName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if req.Price != nil {
		if err := validatePrice("price", *req.Price, beveragePriceDigits, beveragePricePlaces); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil && *req.Inventory < 0 {
		return nil, fmt.Errorf("%w: inventory must not be negative", ErrValidation)
	}

	bev, err := s.Repo.PatchBeverage(ctx, req, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return bev, nil
}

func (s *BeverageService) DeleteBeverage(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteBeverage(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
