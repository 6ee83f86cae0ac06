package models

// EntryExitInterval is the check-in/check-out granularity of the organization.
type EntryExitInterval string

const (
	Interval10Min EntryExitInterval = "10分間隔"
	Interval15Min EntryExitInterval = "15分間隔"
	Interval30Min EntryExitInterval = "30分間隔"
)

// EntryExitIntervals lists the accepted values in display order.
var EntryExitIntervals = []EntryExitInterval{Interval10Min, Interval15Min, Interval30Min}

// ParseEntryExitInterval accepts one of EntryExitIntervals; anything else
// falls back to Interval15Min.
func ParseEntryExitInterval(s string) EntryExitInterval {
	for _, v := range EntryExitIntervals {
		if string(v) == s {
			return v
		}
	}
	return Interval15Min
}

// OrgDefaultSetting is the organization-wide singleton settings row.
type OrgDefaultSetting struct {
	ID                int               `json:"id"`
	SearchLimit       int               `json:"search_limit"`
	NearbyDistanceKm  float64           `json:"nearby_distance_km"`
	EntryExitInterval EntryExitInterval `json:"entry_exit_interval"`
	EnableArea        bool              `json:"enable_area"`
	EnableGroup       bool              `json:"enable_group"`
}

// DefaultOrgSettings returns the values a freshly created singleton row holds.
func DefaultOrgSettings() OrgDefaultSetting {
	return OrgDefaultSetting{
		ID:                1,
		SearchLimit:       10000,
		NearbyDistanceKm:  3.0,
		EntryExitInterval: Interval30Min,
	}
}

// OrgSettingsForm is the raw admin form submission. Numeric fields are parsed
// by the service so failures can be reported back.
type OrgSettingsForm struct {
	SearchLimit       string `form:"search_limit"`
	NearbyDistanceKm  string `form:"nearby_distance_km"`
	EntryExitInterval string `form:"entry_exit_interval"`
	EnableArea        bool
	EnableGroup       bool
}
