package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// ProductService implements product CRUD on top of ProductRepository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns a page of products and the total match count. Sort and
// pagination sanitising happens in the query layer, so the filter is passed
// through as received.
func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (int64, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return 0, domain.ErrTitleRequired
	}
	if input.Price < 0 {
		return 0, domain.ErrNegativePrice
	}

	id, err := s.repo.Create(ctx, &domain.Product{
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("product_id", id).Str("title", title).Msg("product created")
	return id, nil
}

// Update merges the provided fields over the current row and writes the
// result back in full. It reports false when the store saw no change.
func (s *ProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (bool, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return false, err
	}

	next := *current
	if input.Title != nil {
		next.Title = strings.TrimSpace(*input.Title)
	}
	if next.Title == "" {
		return false, domain.ErrTitleRequired
	}
	if input.Description != nil {
		next.Description = input.Description
	}
	if input.Price != nil {
		next.Price = *input.Price
	}
	if next.Price < 0 {
		return false, domain.ErrNegativePrice
	}
	if input.Category != nil {
		next.Category = input.Category
	}

	return s.repo.Update(ctx, &next)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		// Row vanished between the lookup and the delete.
		return domain.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}
