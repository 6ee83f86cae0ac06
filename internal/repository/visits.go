package repository

import (
	"context"
	"fmt"
	"time"

	"visit-map-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const visitColumns = `id, name, start_at, end_at, result, detail, customer_id`

func scanVisit(row pgx.Row) (models.VisitSchedule, error) {
	var v models.VisitSchedule
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.StartAt,
		&v.EndAt,
		&v.Result,
		&v.Detail,
		&v.CustomerID,
	)
	v.StartAt = localWall(v.StartAt)
	v.EndAt = localWall(v.EndAt)
	return v, err
}

func (r *Repository) queryVisits(ctx context.Context, sql string, args ...any) ([]models.VisitSchedule, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute visit query: %w", err)
	}
	defer rows.Close()

	visits := []models.VisitSchedule{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return visits, nil
}

// ListVisits returns all visits ordered by start time (unscheduled last).
func (r *Repository) ListVisits(ctx context.Context) ([]models.VisitSchedule, error) {
	return r.queryVisits(ctx, `SELECT `+visitColumns+` FROM visit_schedules ORDER BY start_at NULLS LAST, id`)
}

// VisitsByCustomer returns the visits of one customer ordered by start time.
func (r *Repository) VisitsByCustomer(ctx context.Context, customerID int) ([]models.VisitSchedule, error) {
	sql := `SELECT ` + visitColumns + ` FROM visit_schedules WHERE customer_id = $1 ORDER BY start_at NULLS LAST, id`
	return r.queryVisits(ctx, sql, customerID)
}

// VisitsForCustomers returns the visits of the given customers ordered by
// customer and start time.
func (r *Repository) VisitsForCustomers(ctx context.Context, customerIDs []int) ([]models.VisitSchedule, error) {
	if len(customerIDs) == 0 {
		return []models.VisitSchedule{}, nil
	}
	sql := `SELECT ` + visitColumns + ` FROM visit_schedules WHERE customer_id = ANY($1) ORDER BY customer_id, start_at NULLS LAST, id`
	return r.queryVisits(ctx, sql, customerIDs)
}

// VisitsBetween returns customer-linked visits starting in [from, to).
func (r *Repository) VisitsBetween(ctx context.Context, from, to time.Time) ([]models.VisitSchedule, error) {
	sql := `
		SELECT ` + visitColumns + `
		FROM visit_schedules
		WHERE customer_id IS NOT NULL AND start_at >= $1 AND start_at < $2
		ORDER BY start_at, id`
	return r.queryVisits(ctx, sql, from, to)
}

// GetVisit returns the visit with the given id or models.ErrNotFound.
func (r *Repository) GetVisit(ctx context.Context, id int) (*models.VisitSchedule, error) {
	v, err := scanVisit(r.db.QueryRow(ctx, `SELECT `+visitColumns+` FROM visit_schedules WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get visit %d: %w", id, notFound(err))
	}
	return &v, nil
}

func visitError(err error) error {
	if isForeignKeyViolation(err) {
		return models.ErrInvalidCustomerRef
	}
	return notFound(err)
}

// CreateVisit inserts v and returns it with its new id.
func (r *Repository) CreateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error) {
	sql := `
		INSERT INTO visit_schedules (name, start_at, end_at, result, detail, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + visitColumns

	created, err := scanVisit(r.db.QueryRow(ctx, sql,
		v.Name, v.StartAt, v.EndAt, v.Result, v.Detail, v.CustomerID))
	if err != nil {
		return models.VisitSchedule{}, fmt.Errorf("repository: failed to create visit: %w", visitError(err))
	}
	return created, nil
}

// UpdateVisit overwrites all columns of the visit with v.ID.
func (r *Repository) UpdateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error) {
	sql := `
		UPDATE visit_schedules
		SET name = $2, start_at = $3, end_at = $4, result = $5, detail = $6, customer_id = $7
		WHERE id = $1
		RETURNING ` + visitColumns

	updated, err := scanVisit(r.db.QueryRow(ctx, sql,
		v.ID, v.Name, v.StartAt, v.EndAt, v.Result, v.Detail, v.CustomerID))
	if err != nil {
		return models.VisitSchedule{}, fmt.Errorf("repository: failed to update visit %d: %w", v.ID, visitError(err))
	}
	return updated, nil
}

// DeleteVisit removes a visit.
func (r *Repository) DeleteVisit(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM visit_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete visit %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to delete visit %d: %w", id, models.ErrNotFound)
	}
	return nil
}
