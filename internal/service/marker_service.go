package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"visit-map-api/internal/geo"
	"visit-map-api/internal/markerstyle"
	"visit-map-api/internal/metrics"
	"visit-map-api/internal/models"

	"github.com/rs/zerolog"
)

// MarkerService builds styled map markers.
type MarkerService struct {
	repo MarkerRepository
	now  func() time.Time
}

// MarkerRepository is the storage the marker service needs.
type MarkerRepository interface {
	CustomersVisitedBetween(ctx context.Context, from, to time.Time) ([]models.Customer, error)
	VisitsBetween(ctx context.Context, from, to time.Time) ([]models.VisitSchedule, error)
	CustomersInBox(ctx context.Context, box geo.BoundingBox) ([]models.Customer, error)
	VisitsForCustomers(ctx context.Context, customerIDs []int) ([]models.VisitSchedule, error)
	ListMarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error)
	GetUserByUsername(ctx context.Context, username string) (*models.MaptechUser, error)
}

func NewMarkerService(repo MarkerRepository) *MarkerService {
	return &MarkerService{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to determine "today".
func (s *MarkerService) WithClock(now func() time.Time) *MarkerService {
	s.now = now
	return s
}

// TodayWindow returns local midnight of t's day and the following midnight.
func TodayWindow(t time.Time) (time.Time, time.Time) {
	t = t.In(time.Local)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// Today returns one marker per customer with a visit starting today. Visit
// rules are evaluated against today's visits only.
func (s *MarkerService) Today(ctx context.Context) ([]models.Marker, error) {
	from, to := TodayWindow(s.now())

	customers, err := s.repo.CustomersVisitedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list today's customers: %w", err)
	}

	visits, err := s.repo.VisitsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list today's visits: %w", err)
	}

	return s.style(ctx, customers, visits)
}

// Nearby returns markers inside the bounding box around (lat, lng). The radius
// is the user's nearby_distance_km preference, or geo.DefaultRadiusKm.
func (s *MarkerService) Nearby(ctx context.Context, username string, lat, lng float64) ([]models.Marker, error) {
	var preferred *float64
	user, err := s.repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		preferred = user.NearbyDistanceKm
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("service: failed to get user: %w", err)
	}

	radius := geo.EffectiveRadius(preferred)
	box := geo.Around(lat, lng, radius)
	zerolog.Ctx(ctx).Debug().
		Float64("lat", lat).
		Float64("lng", lng).
		Float64("radius_km", radius).
		Msg("nearby search")

	customers, err := s.repo.CustomersInBox(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list nearby customers: %w", err)
	}

	return s.Style(ctx, customers)
}

// Style converts customers into markers styled by the current rule set, using
// all visits of each customer.
func (s *MarkerService) Style(ctx context.Context, customers []models.Customer) ([]models.Marker, error) {
	ids := make([]int, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}

	visits, err := s.repo.VisitsForCustomers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list visits: %w", err)
	}

	return s.style(ctx, customers, visits)
}

func (s *MarkerService) style(ctx context.Context, customers []models.Customer, visits []models.VisitSchedule) ([]models.Marker, error) {
	rules, err := s.repo.ListMarkerColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list marker colors: %w", err)
	}
	resolver := markerstyle.NewResolver(rules)

	byCustomer := make(map[int][]models.VisitSchedule)
	for _, v := range visits {
		if v.CustomerID != nil {
			byCustomer[*v.CustomerID] = append(byCustomer[*v.CustomerID], v)
		}
	}

	markers := make([]models.Marker, 0, len(customers))
	for i := range customers {
		m := models.NewMarker(customers[i])
		metrics.RecordStyled(resolver.Apply(&m, &customers[i], byCustomer[customers[i].ID]))
		markers = append(markers, m)
	}

	return markers, nil
}
