package service

import (
	"context"

	"order-desk/internal/catalog"
	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over the immutable catalogue snapshot.
type productService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(cat *catalog.Catalog, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: cat,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves catalogue products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	products := s.catalog.Products()
	if offset >= len(products) {
		return []model.Product{}, nil
	}

	end := offset + limit
	if end > len(products) {
		end = len(products)
	}

	page := products[offset:end]

	s.logger.Debug().
		Int("count", len(page)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return page, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.catalog.Product(id)
	if err != nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, err
	}

	return product, nil
}
