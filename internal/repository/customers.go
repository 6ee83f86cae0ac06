package repository

import (
	"context"
	"fmt"
	"time"

	"visit-map-api/internal/geo"
	"visit-map-api/internal/models"
	"visit-map-api/internal/search"

	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, name, address, latitude, longitude, visit_status, segment`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Latitude,
		&c.Longitude,
		&c.VisitStatus,
		&c.Segment,
	)
	return c, err
}

func (r *Repository) queryCustomers(ctx context.Context, sql string, args ...any) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute customer query: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return customers, nil
}

// ListCustomers returns all customers ordered by id.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return r.queryCustomers(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
}

// GetCustomer returns the customer with the given id or models.ErrNotFound.
func (r *Repository) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get customer %d: %w", id, notFound(err))
	}
	return &c, nil
}

// CreateCustomer inserts c and returns it with its new id.
func (r *Repository) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	sql := `
		INSERT INTO customers (name, address, latitude, longitude, visit_status, segment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + customerColumns

	created, err := scanCustomer(r.db.QueryRow(ctx, sql,
		c.Name, c.Address, c.Latitude, c.Longitude, c.VisitStatus, c.Segment))
	if err != nil {
		return models.Customer{}, fmt.Errorf("repository: failed to create customer: %w", err)
	}
	return created, nil
}

// UpdateCustomer overwrites all columns of the customer with c.ID.
func (r *Repository) UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	sql := `
		UPDATE customers
		SET name = $2, address = $3, latitude = $4, longitude = $5, visit_status = $6, segment = $7
		WHERE id = $1
		RETURNING ` + customerColumns

	updated, err := scanCustomer(r.db.QueryRow(ctx, sql,
		c.ID, c.Name, c.Address, c.Latitude, c.Longitude, c.VisitStatus, c.Segment))
	if err != nil {
		return models.Customer{}, fmt.Errorf("repository: failed to update customer %d: %w", c.ID, notFound(err))
	}
	return updated, nil
}

// DeleteCustomer removes a customer. Its visits keep existing without a customer.
func (r *Repository) DeleteCustomer(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete customer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to delete customer %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// SearchCustomers returns customers matching filter, ordered by id. A limit
// of zero or less means no limit.
func (r *Repository) SearchCustomers(ctx context.Context, filter search.Filter[models.Customer], limit int) ([]models.Customer, error) {
	where, args := filter.SQL(1)
	sql := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where + ` ORDER BY id`
	if limit > 0 {
		args = append(args, limit)
		sql += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	return r.queryCustomers(ctx, sql, args...)
}

// CustomersInBox returns customers whose coordinates fall inside box.
func (r *Repository) CustomersInBox(ctx context.Context, box geo.BoundingBox) ([]models.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY id`
	return r.queryCustomers(ctx, sql, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
}

// CustomersVisitedBetween returns the distinct customers having a visit that
// starts in [from, to).
func (r *Repository) CustomersVisitedBetween(ctx context.Context, from, to time.Time) ([]models.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers c
		WHERE EXISTS (
			SELECT 1 FROM visit_schedules v
			WHERE v.customer_id = c.id AND v.start_at >= $1 AND v.start_at < $2
		)
		ORDER BY id`
	return r.queryCustomers(ctx, sql, from, to)
}

// CountCustomers returns the number of stored customers.
func (r *Repository) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count customers: %w", err)
	}
	return n, nil
}

// ImportCustomers bulk-loads customers with COPY. IDs are assigned by the database.
func (r *Repository) ImportCustomers(ctx context.Context, customers []models.Customer) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"customers"},
		[]string{"name", "address", "latitude", "longitude", "visit_status", "segment"},
		pgx.CopyFromSlice(len(customers), func(i int) ([]any, error) {
			c := customers[i]
			return []any{c.Name, c.Address, c.Latitude, c.Longitude, c.VisitStatus, c.Segment}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to import customers: %w", err)
	}
	return n, nil
}
