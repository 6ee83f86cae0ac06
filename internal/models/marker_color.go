package models

import "strings"

// MarkerColorSetting is an admin-defined styling rule. Target and
// MatchCondition hold the stored labels; the markerstyle package parses them.
type MarkerColorSetting struct {
	ID             int    `json:"id"`
	Priority       *int   `json:"priority"`
	Target         string `json:"target"`
	FieldName      string `json:"field_name"`
	MatchValue     string `json:"match_value"`
	MatchCondition string `json:"match_condition"`
	Color          string `json:"color"`
	MarkerStyle    string `json:"marker_style"`
}

// MarkerColorRow is one row of the admin rule editor. Priority arrives as a
// number, a numeric string, or blank.
type MarkerColorRow struct {
	Priority       *FlexText `json:"priority"`
	Target         string    `json:"target"`
	FieldName      string    `json:"field_name"`
	MatchValue     string    `json:"match_value"`
	MatchCondition string    `json:"match_condition"`
	Color          string    `json:"color"`
	MarkerStyle    string    `json:"marker_style"`
}

// Setting converts the row. A non-numeric priority is an error.
func (r MarkerColorRow) Setting() (MarkerColorSetting, error) {
	p, err := r.Priority.Int()
	if err != nil {
		return MarkerColorSetting{}, err
	}
	return MarkerColorSetting{
		Priority:       p,
		Target:         strings.TrimSpace(r.Target),
		FieldName:      strings.TrimSpace(r.FieldName),
		MatchValue:     r.MatchValue,
		MatchCondition: strings.TrimSpace(r.MatchCondition),
		Color:          strings.TrimSpace(r.Color),
		MarkerStyle:    strings.TrimSpace(r.MarkerStyle),
	}, nil
}
