package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserPreferences is the per-user map preference bag. Nil means unset.
type UserPreferences struct {
	TransportMethod       *string  `json:"transport_method"`
	RouteOrigin           *string  `json:"route_origin"`
	SavedSearchConditions *string  `json:"saved_search_conditions"`
	MarkerClusterMaxZoom  *int     `json:"marker_cluster_max_zoom"`
	ZoomSetting           *string  `json:"zoom_setting"`
	OriginLng             *float64 `json:"origin_lng"`
	OriginLat             *float64 `json:"origin_lat"`
	NearbyDistanceKm      *float64 `json:"nearby_distance_km"`
	MapDisplayTypeMain    *string  `json:"map_display_type_main"`
	MapDisplayTypeAdjust  *string  `json:"map_display_type_adjust"`
	TollUsage             *string  `json:"toll_usage"`
	VisitStatus           *string  `json:"visit_status"`
	PastVisitEdit         *string  `json:"past_visit_edit"`
}

// MaptechUser is a field user of the mobile map. Passwords are stored as entered.
type MaptechUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	UserPreferences
}

// AdminUser is an account of the settings console.
type AdminUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// FlexText accepts either a JSON string or a JSON number and keeps it as text.
// zoom_setting was stored as an integer by older clients.
type FlexText string

func (f *FlexText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexText(n.String())
	return nil
}

// Ptr returns the text as a *string, nil for a nil receiver.
func (f *FlexText) Ptr() *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

// Int parses the text as an integer. Blank text is reported as absent.
func (f *FlexText) Int() (*int, error) {
	if f == nil || strings.TrimSpace(string(*f)) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(*f)))
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", string(*f))
	}
	return &n, nil
}

// UserSettingsUpdate is a partial update of UserPreferences. Keys present in
// the payload overwrite, an explicit null clears the preference, absent keys
// are left alone.
type UserSettingsUpdate struct {
	TransportMethod       Optional[string]   `json:"transport_method"`
	RouteOrigin           Optional[string]   `json:"route_origin"`
	SavedSearchConditions Optional[string]   `json:"saved_search_conditions"`
	MarkerClusterMaxZoom  Optional[int]      `json:"marker_cluster_max_zoom"`
	ZoomSetting           Optional[FlexText] `json:"zoom_setting"`
	OriginLng             Optional[float64]  `json:"origin_lng"`
	OriginLat             Optional[float64]  `json:"origin_lat"`
	NearbyDistanceKm      Optional[float64]  `json:"nearby_distance_km"`
	MapDisplayTypeMain    Optional[string]   `json:"map_display_type_main"`
	MapDisplayTypeAdjust  Optional[string]   `json:"map_display_type_adjust"`
	TollUsage             Optional[string]   `json:"toll_usage"`
	VisitStatus           Optional[string]   `json:"visit_status"`
	PastVisitEdit         Optional[string]   `json:"past_visit_edit"`
}

// Apply merges the present fields of u into p.
func (u UserSettingsUpdate) Apply(p *UserPreferences) {
	u.TransportMethod.apply(&p.TransportMethod)
	u.RouteOrigin.apply(&p.RouteOrigin)
	u.SavedSearchConditions.apply(&p.SavedSearchConditions)
	u.MarkerClusterMaxZoom.apply(&p.MarkerClusterMaxZoom)
	if u.ZoomSetting.Set {
		p.ZoomSetting = u.ZoomSetting.Value.Ptr()
	}
	u.OriginLng.apply(&p.OriginLng)
	u.OriginLat.apply(&p.OriginLat)
	u.NearbyDistanceKm.apply(&p.NearbyDistanceKm)
	u.MapDisplayTypeMain.apply(&p.MapDisplayTypeMain)
	u.MapDisplayTypeAdjust.apply(&p.MapDisplayTypeAdjust)
	u.TollUsage.apply(&p.TollUsage)
	u.VisitStatus.apply(&p.VisitStatus)
	u.PastVisitEdit.apply(&p.PastVisitEdit)
}

// UserRow is one row of the admin user list editor.
type UserRow struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserSettingsUpdate
}

// User converts the row into a new user (id assigned by storage).
func (r UserRow) User() MaptechUser {
	u := MaptechUser{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
	r.UserSettingsUpdate.Apply(&u.UserPreferences)
	return u
}
