package service

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"
	"visit-map-api/internal/search"

	"github.com/rs/zerolog"
)

// SearchService runs dynamic customer searches.
type SearchService struct {
	repo    SearchRepository
	markers MarkerStyler
}

// SearchRepository is the storage the search service needs.
type SearchRepository interface {
	SearchCustomers(ctx context.Context, filter search.Filter[models.Customer], limit int) ([]models.Customer, error)
	GetOrCreateOrgDefaults(ctx context.Context) (models.OrgDefaultSetting, bool, error)
}

// MarkerStyler turns customers into styled markers.
type MarkerStyler interface {
	Style(ctx context.Context, customers []models.Customer) ([]models.Marker, error)
}

func NewSearchService(repo SearchRepository, markers MarkerStyler) *SearchService {
	return &SearchService{repo: repo, markers: markers}
}

// Fields lists the searchable fields per entity.
func (s *SearchService) Fields() map[string][]string {
	return map[string][]string{"customers": search.Customers.Fields()}
}

// Customers returns markers for the customers matching every usable filter,
// capped by the organization's search limit.
func (s *SearchService) Customers(ctx context.Context, pairs []search.Pair) ([]models.Marker, error) {
	filter := search.Customers.Build(pairs)

	defaults, _, err := s.repo.GetOrCreateOrgDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load org defaults: %w", err)
	}

	customers, err := s.repo.SearchCustomers(ctx, filter, defaults.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search customers: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("requested", len(pairs)).
		Int("applied", len(filter.Conditions())).
		Int("results", len(customers)).
		Msg("customer search")

	return s.markers.Style(ctx, customers)
}
