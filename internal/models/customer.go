package models

import "visit-map-api/internal/schema"

// Customer is a visitable location shown as a marker on the map.
type Customer struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	VisitStatus *string `json:"visit_status"`
	Segment     *string `json:"segment"`
}

// CustomerInput is the create/update payload for a customer.
type CustomerInput struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	VisitStatus *string  `json:"visit_status"`
	Segment     *string  `json:"segment"`
}

// Customer converts the payload into an entity with the given id.
func (in CustomerInput) Customer(id int) Customer {
	c := Customer{
		ID:          id,
		Name:        in.Name,
		Address:     in.Address,
		VisitStatus: in.VisitStatus,
		Segment:     in.Segment,
	}
	if in.Latitude != nil {
		c.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		c.Longitude = *in.Longitude
	}
	return c
}

// CustomerFields is the column registry of the customers table, in column order.
// It is the whitelist for dynamic search and the field set for customer marker rules.
var CustomerFields = schema.NewRegistry(
	schema.Field[Customer]{Name: "id", Kind: schema.KindInt, Get: func(c *Customer) schema.Value { return schema.Int(c.ID) }},
	schema.Field[Customer]{Name: "name", Kind: schema.KindText, Get: func(c *Customer) schema.Value { return schema.Text(c.Name) }},
	schema.Field[Customer]{Name: "address", Kind: schema.KindText, Get: func(c *Customer) schema.Value { return schema.Text(c.Address) }},
	schema.Field[Customer]{Name: "latitude", Kind: schema.KindFloat, Get: func(c *Customer) schema.Value { return schema.Float(c.Latitude) }},
	schema.Field[Customer]{Name: "longitude", Kind: schema.KindFloat, Get: func(c *Customer) schema.Value { return schema.Float(c.Longitude) }},
	schema.Field[Customer]{Name: "visit_status", Kind: schema.KindText, Get: func(c *Customer) schema.Value { return schema.OptText(c.VisitStatus) }},
	schema.Field[Customer]{Name: "segment", Kind: schema.KindText, Get: func(c *Customer) schema.Value { return schema.OptText(c.Segment) }},
)

// Marker is the map pin representation of a customer.
type Marker struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address"`
	Color       string  `json:"color,omitempty"`
	MarkerStyle string  `json:"marker_style,omitempty"`
}

// NewMarker builds an unstyled marker for c.
func NewMarker(c Customer) Marker {
	return Marker{
		ID:      c.ID,
		Title:   c.Name,
		Lat:     c.Latitude,
		Lng:     c.Longitude,
		Address: c.Address,
	}
}

// CustomerDetail is a customer together with its visits ordered by start time.
type CustomerDetail struct {
	Customer Customer        `json:"customer"`
	Visits   []VisitSchedule `json:"visits"`
}
