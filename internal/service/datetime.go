package service

import (
	"strings"
	"time"
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 timestamp. nil, "" and "null" mean no value.
// Zoneless input is local wall-clock time; input carrying an offset is
// converted to local time.
func ParseDateTime(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" || v == "null" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		local := t.In(time.Local)
		return &local, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return &t, nil
		}
	}

	return nil, validationf("Invalid datetime: %s", *s)
}
