// Package schema holds static, per-entity field registries. A registry maps a
// column name to its type tag and an accessor, so search filters and marker
// rules can address record fields by name without runtime reflection.
package schema

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the declared column type of a field.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindTime:
		return "datetime"
	default:
		return "text"
	}
}

// Numeric reports whether values of this kind are compared as numbers when filtering.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// TimeLayout is the textual form of timestamps (ISO-8601 without zone).
const TimeLayout = "2006-01-02T15:04:05"

// Value is one field value read from a record.
type Value struct {
	Kind  Kind
	Null  bool
	Text  string
	Int   int64
	Float float64
	Time  time.Time
}

// String renders the value the way rules compare it. Integral floats keep a
// trailing ".0" so 5 stored as a float reads "5.0".
func (v Value) String() string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !math.IsInf(v.Float, 0) && !math.IsNaN(v.Float) && !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case KindTime:
		return v.Time.Format(TimeLayout)
	default:
		return v.Text
	}
}

func Text(s string) Value { return Value{Kind: KindText, Text: s} }

func OptText(s *string) Value {
	if s == nil {
		return Value{Kind: KindText, Null: true}
	}
	return Text(*s)
}

func Int(n int) Value { return Value{Kind: KindInt, Int: int64(n)} }

func OptInt(n *int) Value {
	if n == nil {
		return Value{Kind: KindInt, Null: true}
	}
	return Int(*n)
}

func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func OptFloat(f *float64) Value {
	if f == nil {
		return Value{Kind: KindFloat, Null: true}
	}
	return Float(*f)
}

func OptTime(t *time.Time) Value {
	if t == nil {
		return Value{Kind: KindTime, Null: true}
	}
	return Value{Kind: KindTime, Time: *t}
}

// Field describes one column of entity T.
type Field[T any] struct {
	Name string
	Kind Kind
	Get  func(*T) Value
}

// Registry is an ordered, immutable set of fields for entity T.
type Registry[T any] struct {
	fields []Field[T]
	byName map[string]int
}

// NewRegistry builds a registry. Field order is preserved for Names.
func NewRegistry[T any](fields ...Field[T]) *Registry[T] {
	r := &Registry[T]{
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		r.byName[f.Name] = i
	}
	return r
}

// Lookup returns the field with the given column name.
func (r *Registry[T]) Lookup(name string) (Field[T], bool) {
	i, ok := r.byName[name]
	if !ok {
		return Field[T]{}, false
	}
	return r.fields[i], true
}

// Names lists the field names in declaration order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Value reads the named field from rec. ok is false for unknown names.
func (r *Registry[T]) Value(rec *T, name string) (Value, bool) {
	f, ok := r.Lookup(name)
	if !ok || rec == nil {
		return Value{}, false
	}
	return f.Get(rec), true
}
