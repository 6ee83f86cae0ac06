package markerstyle

import (
	"visit-map-api/internal/models"
	"visit-map-api/internal/schema"
)

// Record is anything a rule can be evaluated against.
type Record interface {
	Kind() Target
	Value(field string) (schema.Value, bool)
}

type customerRecord struct{ c *models.Customer }

func (r customerRecord) Kind() Target { return TargetCustomer }

func (r customerRecord) Value(field string) (schema.Value, bool) {
	return models.CustomerFields.Value(r.c, field)
}

// CustomerRecord exposes c to the rule engine.
func CustomerRecord(c *models.Customer) Record { return customerRecord{c: c} }

type visitRecord struct{ v *models.VisitSchedule }

func (r visitRecord) Kind() Target { return TargetVisit }

func (r visitRecord) Value(field string) (schema.Value, bool) {
	return models.VisitFields.Value(r.v, field)
}

// VisitRecord exposes v to the rule engine.
func VisitRecord(v *models.VisitSchedule) Record { return visitRecord{v: v} }
