package catalog

import (
	"context"
	"strings"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/model"
)

// Service exposes the catalog lookups the storefront and the chatbot rely
// on. All listings preserve the seeded catalog order; filters never re-sort.
type Service struct {
	repo Repository
}

func New(db *database.Database) *Service {
	return &Service{repo: NewDynamoRepository(db)}
}

func NewWithRepository(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]model.ProductItem, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]model.ProductItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.ProductItem, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) TopRated(ctx context.Context, minRating float64) ([]model.ProductItem, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.ProductItem, 0, len(products))
	for _, p := range products {
		if p.Rating >= minRating {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) GetProduct(ctx context.Context, productID string) (model.ProductItem, error) {
	return s.repo.GetProduct(ctx, strings.TrimSpace(productID))
}

// FilterByMaxPrice keeps products priced at or below limit, in input order.
func FilterByMaxPrice(products []model.ProductItem, limit float64) []model.ProductItem {
	filtered := make([]model.ProductItem, 0, len(products))
	for _, p := range products {
		if p.Price <= limit {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
