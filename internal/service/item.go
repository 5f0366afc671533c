package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/repo"
	"github.com/example/storefront/internal/transport"
)

type ItemService struct {
	Repo *repo.GormRepo
}

func (s *ItemService) CreateItem(ctx context.Context, req transport.CreateItemRequest, ownerID uuid.UUID) (*models.Item, error) {
	if err := validateName("title", req.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner_id required", ErrValidation)
	}

	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	created, err := s.Repo.CreateItem(ctx, &item)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context, ownerID *uuid.UUID, offset, limit int) (int64, []models.Item, error) {
	total, items, err := s.Repo.ListItems(ctx, ownerID, offset, limit)
	if err != nil {
		return 0, nil, mapRepoErr(err)
	}
	return total, items, nil
}

func (s *ItemService) PatchItem(ctx context.Context, req transport.PatchItemRequest, id uuid.UUID) (*models.Item, error) {
	if req.Title != nil {
		if err := validateName("title", *req.Title); err != nil {
			return nil, err
		}
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	item, err := s.Repo.PatchItem(ctx, req, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
