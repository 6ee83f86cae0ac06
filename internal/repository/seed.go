package repository

import (
	"context"
	"fmt"
	"time"

	"visit-map-api/internal/models"

	"github.com/jackc/pgx/v5"
)

func ptr[T any](v T) *T { return &v }

// SeedIfEmpty inserts sample rows into each empty table so the map and the
// admin console show something on first run. now anchors the sample visit,
// which is scheduled for the following day.
func (r *Repository) SeedIfEmpty(ctx context.Context, now time.Time) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		empty := func(table string) (bool, error) {
			var n int
			if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM `+pgx.Identifier{table}.Sanitize()).Scan(&n); err != nil {
				return false, err
			}
			return n == 0, nil
		}

		var firstCustomer int
		if ok, err := empty("customers"); err != nil {
			return err
		} else if ok {
			seeds := []models.Customer{
				{Name: "東京本社ビル", Address: "東京都千代田区丸の内1-9-1", Latitude: 35.681236, Longitude: 139.767125, VisitStatus: ptr("未訪問"), Segment: ptr("法人")},
				{Name: "新宿営業所", Address: "東京都新宿区西新宿2-8-1", Latitude: 35.689592, Longitude: 139.691833, VisitStatus: ptr("訪問済み"), Segment: ptr("法人")},
			}
			for i, c := range seeds {
				var id int
				err := tx.QueryRow(ctx, `
					INSERT INTO customers (name, address, latitude, longitude, visit_status, segment)
					VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
					c.Name, c.Address, c.Latitude, c.Longitude, c.VisitStatus, c.Segment).Scan(&id)
				if err != nil {
					return fmt.Errorf("customer: %w", err)
				}
				if i == 0 {
					firstCustomer = id
				}
			}
		} else if err := tx.QueryRow(ctx, `SELECT MIN(id) FROM customers`).Scan(&firstCustomer); err != nil {
			return fmt.Errorf("customer: %w", err)
		}

		if ok, err := empty("visit_schedules"); err != nil {
			return err
		} else if ok {
			start := now.AddDate(0, 0, 1)
			end := start.Add(time.Hour)
			_, err := tx.Exec(ctx, `
				INSERT INTO visit_schedules (name, start_at, end_at, result, detail, customer_id)
				VALUES ($1, $2, $3, NULL, $4, $5)`,
				"定期訪問", start, end, "次回の商談準備", firstCustomer)
			if err != nil {
				return fmt.Errorf("visit: %w", err)
			}
		}

		if ok, err := empty("maptech_users"); err != nil {
			return err
		} else if ok {
			demo := models.MaptechUser{
				Username: "demo",
				Password: "demo",
				UserPreferences: models.UserPreferences{
					TransportMethod:       ptr("徒歩"),
					RouteOrigin:           ptr("東京駅"),
					SavedSearchConditions: ptr(""),
					MarkerClusterMaxZoom:  ptr(12),
					ZoomSetting:           ptr("13"),
					OriginLng:             ptr(139.767125),
					OriginLat:             ptr(35.681236),
					NearbyDistanceKm:      ptr(5.0),
					MapDisplayTypeMain:    ptr("標準"),
					MapDisplayTypeAdjust:  ptr("登録・調整"),
					TollUsage:             ptr("利用する"),
					VisitStatus:           ptr("未訪問"),
					PastVisitEdit:         ptr("不可"),
				},
			}
			args := append([]any{demo.Username, demo.Password}, preferenceArgs(demo.UserPreferences)...)
			if _, err := tx.Exec(ctx, insertUserSQL, args...); err != nil {
				return fmt.Errorf("user: %w", err)
			}
		}

		if ok, err := empty("admin_users"); err != nil {
			return err
		} else if ok {
			if _, err := tx.Exec(ctx, `INSERT INTO admin_users (username, password) VALUES ($1, $2)`, "admin", "admin"); err != nil {
				return fmt.Errorf("admin: %w", err)
			}
		}

		if ok, err := empty("marker_color_settings"); err != nil {
			return err
		} else if ok {
			_, err := tx.Exec(ctx, `
				INSERT INTO marker_color_settings
					(priority, target, field_name, match_value, match_condition, color, marker_style)
				VALUES
					(1, '顧客情報', 'visit_status', '未訪問', '等しい', '#E53935', 'pin'),
					(2, '顧客情報', 'visit_status', '訪問済み', '等しい', '#43A047', 'pin'),
					(3, '訪問予定', 'result', '受注', '等しい', '#1E88E5', 'star')`)
			if err != nil {
				return fmt.Errorf("marker colors: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("repository: failed to seed: %w", err)
	}

	if _, _, err := r.GetOrCreateOrgDefaults(ctx); err != nil {
		return err
	}
	return nil
}
