package repository

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password, transport_method, route_origin, saved_search_conditions,
	marker_cluster_max_zoom, zoom_setting, origin_lng, origin_lat, nearby_distance_km,
	map_display_type_main, map_display_type_adjust, toll_usage, visit_status, past_visit_edit`

func scanUser(row pgx.Row) (models.MaptechUser, error) {
	var u models.MaptechUser
	p := &u.UserPreferences
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&p.TransportMethod,
		&p.RouteOrigin,
		&p.SavedSearchConditions,
		&p.MarkerClusterMaxZoom,
		&p.ZoomSetting,
		&p.OriginLng,
		&p.OriginLat,
		&p.NearbyDistanceKm,
		&p.MapDisplayTypeMain,
		&p.MapDisplayTypeAdjust,
		&p.TollUsage,
		&p.VisitStatus,
		&p.PastVisitEdit,
	)
	return u, err
}

func preferenceArgs(p models.UserPreferences) []any {
	return []any{
		p.TransportMethod,
		p.RouteOrigin,
		p.SavedSearchConditions,
		p.MarkerClusterMaxZoom,
		p.ZoomSetting,
		p.OriginLng,
		p.OriginLat,
		p.NearbyDistanceKm,
		p.MapDisplayTypeMain,
		p.MapDisplayTypeAdjust,
		p.TollUsage,
		p.VisitStatus,
		p.PastVisitEdit,
	}
}

const insertUserSQL = `
	INSERT INTO maptech_users (username, password, transport_method, route_origin, saved_search_conditions,
		marker_cluster_max_zoom, zoom_setting, origin_lng, origin_lat, nearby_distance_km,
		map_display_type_main, map_display_type_adjust, toll_usage, visit_status, past_visit_edit)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// ListUsers returns all map users ordered by id.
func (r *Repository) ListUsers(ctx context.Context) ([]models.MaptechUser, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM maptech_users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.MaptechUser{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return users, nil
}

// GetUserByUsername returns the user or models.ErrNotFound.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.MaptechUser, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM maptech_users WHERE username = $1`, username))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get user: %w", notFound(err))
	}
	return &u, nil
}

// FindUserByCredentials returns the user whose username and password both
// match, or models.ErrNotFound.
func (r *Repository) FindUserByCredentials(ctx context.Context, username, password string) (*models.MaptechUser, error) {
	sql := `SELECT ` + userColumns + ` FROM maptech_users WHERE username = $1 AND password = $2`
	u, err := scanUser(r.db.QueryRow(ctx, sql, username, password))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to find user: %w", notFound(err))
	}
	return &u, nil
}

// UpdateUserPreferences overwrites the preference columns of one user.
func (r *Repository) UpdateUserPreferences(ctx context.Context, id int, p models.UserPreferences) error {
	sql := `
		UPDATE maptech_users SET
			transport_method = $2, route_origin = $3, saved_search_conditions = $4,
			marker_cluster_max_zoom = $5, zoom_setting = $6, origin_lng = $7, origin_lat = $8,
			nearby_distance_km = $9, map_display_type_main = $10, map_display_type_adjust = $11,
			toll_usage = $12, visit_status = $13, past_visit_edit = $14
		WHERE id = $1`

	args := append([]any{id}, preferenceArgs(p)...)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("repository: failed to update user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to update user %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// ReplaceUsers deletes every map user and inserts users in one transaction.
// On any failure the previous user set is left untouched.
func (r *Repository) ReplaceUsers(ctx context.Context, users []models.MaptechUser) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM maptech_users`); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		for i, u := range users {
			args := append([]any{u.Username, u.Password}, preferenceArgs(u.UserPreferences)...)
			if _, err := tx.Exec(ctx, insertUserSQL, args...); err != nil {
				return fmt.Errorf("insert row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repository: failed to replace users: %w", err)
	}
	return nil
}

// CreateUser inserts one map user.
func (r *Repository) CreateUser(ctx context.Context, u models.MaptechUser) error {
	args := append([]any{u.Username, u.Password}, preferenceArgs(u.UserPreferences)...)
	if _, err := r.db.Exec(ctx, insertUserSQL, args...); err != nil {
		return fmt.Errorf("repository: failed to create user: %w", err)
	}
	return nil
}

// FindAdminByCredentials returns the admin whose username and password both
// match, or models.ErrNotFound.
func (r *Repository) FindAdminByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error) {
	var a models.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM admin_users WHERE username = $1 AND password = $2`,
		username, password,
	).Scan(&a.ID, &a.Username, &a.Password)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to find admin: %w", notFound(err))
	}
	return &a, nil
}

// GetAdminByUsername returns the admin or models.ErrNotFound.
func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var a models.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM admin_users WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.Password)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get admin: %w", notFound(err))
	}
	return &a, nil
}

// CreateAdmin inserts an admin unless the username already exists.
func (r *Repository) CreateAdmin(ctx context.Context, a models.AdminUser) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_users (username, password) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		a.Username, a.Password)
	if err != nil {
		return fmt.Errorf("repository: failed to create admin: %w", err)
	}
	return nil
}
