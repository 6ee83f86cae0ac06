package service

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"
)

// VisitService manages visit schedules.
type VisitService struct {
	repo VisitRepository
}

// VisitRepository is the storage the visit service needs.
type VisitRepository interface {
	ListVisits(ctx context.Context) ([]models.VisitSchedule, error)
	GetVisit(ctx context.Context, id int) (*models.VisitSchedule, error)
	CreateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error)
	UpdateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error)
	DeleteVisit(ctx context.Context, id int) error
}

func NewVisitService(repo VisitRepository) *VisitService {
	return &VisitService{repo: repo}
}

// visit parses the payload's datetimes. end_at is not checked against start_at.
func visit(id int, in models.VisitInput) (models.VisitSchedule, error) {
	start, err := ParseDateTime(in.StartAt)
	if err != nil {
		return models.VisitSchedule{}, err
	}
	end, err := ParseDateTime(in.EndAt)
	if err != nil {
		return models.VisitSchedule{}, err
	}
	return models.VisitSchedule{
		ID:         id,
		Name:       in.Name,
		StartAt:    start,
		EndAt:      end,
		Result:     in.Result,
		Detail:     in.Detail,
		CustomerID: in.CustomerID,
	}, nil
}

func (s *VisitService) List(ctx context.Context) ([]models.VisitSchedule, error) {
	visits, err := s.repo.ListVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list visits: %w", err)
	}
	return visits, nil
}

func (s *VisitService) Get(ctx context.Context, id int) (*models.VisitSchedule, error) {
	v, err := s.repo.GetVisit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get visit: %w", err)
	}
	return v, nil
}

func (s *VisitService) Create(ctx context.Context, in models.VisitInput) (models.VisitSchedule, error) {
	v, err := visit(0, in)
	if err != nil {
		return models.VisitSchedule{}, err
	}

	created, err := s.repo.CreateVisit(ctx, v)
	if err != nil {
		return models.VisitSchedule{}, fmt.Errorf("service: failed to create visit: %w", err)
	}
	return created, nil
}

func (s *VisitService) Update(ctx context.Context, id int, in models.VisitInput) (models.VisitSchedule, error) {
	v, err := visit(id, in)
	if err != nil {
		return models.VisitSchedule{}, err
	}

	updated, err := s.repo.UpdateVisit(ctx, v)
	if err != nil {
		return models.VisitSchedule{}, fmt.Errorf("service: failed to update visit: %w", err)
	}
	return updated, nil
}

func (s *VisitService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteVisit(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete visit: %w", err)
	}
	return nil
}
