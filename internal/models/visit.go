package models

import (
	"encoding/json"
	"time"

	"visit-map-api/internal/schema"
)

// VisitSchedule is a planned or completed visit, optionally tied to a customer.
// EndAt is not required to be after StartAt.
type VisitSchedule struct {
	ID         int
	Name       string
	StartAt    *time.Time
	EndAt      *time.Time
	Result     *string
	Detail     *string
	CustomerID *int
}

type visitJSON struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	StartAt    *string `json:"start_at"`
	EndAt      *string `json:"end_at"`
	Result     *string `json:"result"`
	Detail     *string `json:"detail"`
	CustomerID *int    `json:"customer_id"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(schema.TimeLayout)
	return &s
}

// MarshalJSON renders timestamps as ISO-8601 local wall-clock strings.
func (v VisitSchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(visitJSON{
		ID:         v.ID,
		Name:       v.Name,
		StartAt:    formatTime(v.StartAt),
		EndAt:      formatTime(v.EndAt),
		Result:     v.Result,
		Detail:     v.Detail,
		CustomerID: v.CustomerID,
	})
}

// VisitInput is the create/update payload for a visit. Datetimes stay strings
// here; the service parses them so malformed values can be reported as 400.
type VisitInput struct {
	Name       string  `json:"name" binding:"required"`
	StartAt    *string `json:"start_at"`
	EndAt      *string `json:"end_at"`
	Result     *string `json:"result"`
	Detail     *string `json:"detail"`
	CustomerID *int    `json:"customer_id"`
}

// VisitFields is the column registry of the visit_schedules table.
var VisitFields = schema.NewRegistry(
	schema.Field[VisitSchedule]{Name: "id", Kind: schema.KindInt, Get: func(v *VisitSchedule) schema.Value { return schema.Int(v.ID) }},
	schema.Field[VisitSchedule]{Name: "name", Kind: schema.KindText, Get: func(v *VisitSchedule) schema.Value { return schema.Text(v.Name) }},
	schema.Field[VisitSchedule]{Name: "start_at", Kind: schema.KindTime, Get: func(v *VisitSchedule) schema.Value { return schema.OptTime(v.StartAt) }},
	schema.Field[VisitSchedule]{Name: "end_at", Kind: schema.KindTime, Get: func(v *VisitSchedule) schema.Value { return schema.OptTime(v.EndAt) }},
	schema.Field[VisitSchedule]{Name: "result", Kind: schema.KindText, Get: func(v *VisitSchedule) schema.Value { return schema.OptText(v.Result) }},
	schema.Field[VisitSchedule]{Name: "detail", Kind: schema.KindText, Get: func(v *VisitSchedule) schema.Value { return schema.OptText(v.Detail) }},
	schema.Field[VisitSchedule]{Name: "customer_id", Kind: schema.KindInt, Get: func(v *VisitSchedule) schema.Value { return schema.OptInt(v.CustomerID) }},
)
