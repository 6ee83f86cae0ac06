package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSettingsUpdate_Apply(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }

	tests := []struct {
		name     string
		payload  string
		expected UserPreferences
	}{
		{
			name:     "absent keys keep values",
			payload:  `{}`,
			expected: UserPreferences{TollUsage: str("利用する"), ZoomSetting: str("13"), NearbyDistanceKm: num(12.5)},
		},
		{
			name:     "null clears a set value",
			payload:  `{"nearby_distance_km": null}`,
			expected: UserPreferences{TollUsage: str("利用する"), ZoomSetting: str("13")},
		},
		{
			name:     "number zoom stored as text",
			payload:  `{"zoom_setting": 15}`,
			expected: UserPreferences{TollUsage: str("利用する"), ZoomSetting: str("15"), NearbyDistanceKm: num(12.5)},
		},
		{
			name:     "null zoom and value overwrite",
			payload:  `{"zoom_setting": null, "toll_usage": "利用しない"}`,
			expected: UserPreferences{TollUsage: str("利用しない"), NearbyDistanceKm: num(12.5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := UserPreferences{TollUsage: str("利用する"), ZoomSetting: str("13"), NearbyDistanceKm: num(12.5)}

			var upd UserSettingsUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &upd))
			upd.Apply(&prefs)

			assert.Equal(t, tt.expected, prefs)
		})
	}
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var upd UserSettingsUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"origin_lat": 35.68, "route_origin": null}`), &upd))

	assert.Equal(t, Some(35.68), upd.OriginLat)
	assert.Equal(t, Null[string](), upd.RouteOrigin)
	assert.False(t, upd.OriginLng.Set)

	err := json.Unmarshal([]byte(`{"nearby_distance_km": "far"}`), &upd)
	assert.Error(t, err)
}
