package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"visit-map-api/internal/models"
)

var requiredColumns = []string{"name", "address", "latitude", "longitude"}

// parseCSV reads customers from CSV with a header row. Columns are matched by
// header name; visit_status and segment are optional and blank means NULL.
func parseCSV(r io.Reader) ([]models.Customer, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	optional := func(record []string, col string) *string {
		if v := field(record, col); v != "" {
			return &v
		}
		return nil
	}

	var customers []models.Customer
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		lat, err := strconv.ParseFloat(field(record, "latitude"), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude: %q", line, field(record, "latitude"))
		}
		lng, err := strconv.ParseFloat(field(record, "longitude"), 64)
		if err != nil || lng < -180 || lng > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude: %q", line, field(record, "longitude"))
		}

		c := models.Customer{
			Name:        field(record, "name"),
			Address:     field(record, "address"),
			Latitude:    lat,
			Longitude:   lng,
			VisitStatus: optional(record, "visit_status"),
			Segment:     optional(record, "segment"),
		}
		if c.Name == "" || c.Address == "" {
			return nil, fmt.Errorf("line %d: name and address are required", line)
		}

		customers = append(customers, c)
	}

	return customers, nil
}
