package service

import (
	"context"

	"order-desk/internal/catalog"
	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

// promotionService implements PromotionService over the immutable catalogue snapshot.
type promotionService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(cat *catalog.Catalog, logger zerolog.Logger) PromotionService {
	return &promotionService{
		catalog: cat,
		logger:  logger.With().Str("service", "promotion").Logger(),
	}
}

// GetAll retrieves all promotions in catalogue order.
func (s *promotionService) GetAll(ctx context.Context) ([]model.Promotion, error) {
	promotions := s.catalog.Promotions()

	s.logger.Debug().Int("count", len(promotions)).Msg("retrieved promotions")

	return promotions, nil
}
