package repository

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// ListMarkerColors returns all rules in evaluation order.
func (r *Repository) ListMarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error) {
	sql := `
		SELECT id, priority, target, field_name, match_value, match_condition, color, marker_style
		FROM marker_color_settings
		ORDER BY priority NULLS LAST, id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list marker colors: %w", err)
	}
	defer rows.Close()

	rules := []models.MarkerColorSetting{}
	for rows.Next() {
		var m models.MarkerColorSetting
		err := rows.Scan(
			&m.ID,
			&m.Priority,
			&m.Target,
			&m.FieldName,
			&m.MatchValue,
			&m.MatchCondition,
			&m.Color,
			&m.MarkerStyle,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan marker color: %w", err)
		}
		rules = append(rules, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return rules, nil
}

// ReplaceMarkerColors deletes every rule and inserts rules in one
// transaction. On any failure the previous rule set is left untouched.
func (r *Repository) ReplaceMarkerColors(ctx context.Context, rules []models.MarkerColorSetting) error {
	sql := `
		INSERT INTO marker_color_settings
			(priority, target, field_name, match_value, match_condition, color, marker_style)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM marker_color_settings`); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		for i, m := range rules {
			_, err := tx.Exec(ctx, sql,
				m.Priority, m.Target, m.FieldName, m.MatchValue, m.MatchCondition, m.Color, m.MarkerStyle)
			if err != nil {
				return fmt.Errorf("insert row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repository: failed to replace marker colors: %w", err)
	}
	return nil
}
