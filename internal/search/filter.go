// Package search turns (field, value) pairs into a composed predicate over a
// whitelisted set of entity columns.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"visit-map-api/internal/models"
	"visit-map-api/internal/schema"

	"github.com/lib/pq"
)

// Pair is one requested filter.
type Pair struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Condition is a validated, typed predicate on one column.
type Condition struct {
	Field string
	Kind  schema.Kind
	Text  string
	Int   int64
	Float float64
}

// Builder builds filters for entity T from its field registry.
type Builder[T any] struct {
	fields *schema.Registry[T]
}

// NewBuilder returns a builder whose whitelist is the registry's fields.
func NewBuilder[T any](fields *schema.Registry[T]) *Builder[T] {
	return &Builder[T]{fields: fields}
}

// Customers builds filters over the customers table.
var Customers = NewBuilder(models.CustomerFields)

// Fields lists the queryable field names.
func (b *Builder[T]) Fields() []string {
	return b.fields.Names()
}

// Build keeps the pairs that name a known field with a non-empty value that
// parses as the field's type. Everything else is dropped without error.
func (b *Builder[T]) Build(pairs []Pair) Filter[T] {
	f := Filter[T]{fields: b.fields}
	for _, p := range pairs {
		field, ok := b.fields.Lookup(p.Field)
		if !ok || p.Value == "" {
			continue
		}
		cond := Condition{Field: field.Name, Kind: field.Kind}
		switch field.Kind {
		case schema.KindInt:
			n, err := strconv.ParseInt(strings.TrimSpace(p.Value), 10, 64)
			if err != nil {
				continue
			}
			cond.Int = n
		case schema.KindFloat:
			v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
			if err != nil {
				continue
			}
			cond.Float = v
		case schema.KindText:
			cond.Text = p.Value
		default:
			// datetime columns are not searchable
			continue
		}
		f.conds = append(f.conds, cond)
	}
	return f
}

// Filter is an AND of conditions. The zero value matches everything.
type Filter[T any] struct {
	fields *schema.Registry[T]
	conds  []Condition
}

// Conditions returns the surviving predicates.
func (f Filter[T]) Conditions() []Condition {
	return f.conds
}

// Empty reports whether the filter has no predicates.
func (f Filter[T]) Empty() bool {
	return len(f.conds) == 0
}

// SQL renders the predicates as a WHERE body with positional parameters
// starting at $firstArg. An empty filter renders "TRUE".
func (f Filter[T]) SQL(firstArg int) (string, []any) {
	if len(f.conds) == 0 {
		return "TRUE", nil
	}
	clauses := make([]string, 0, len(f.conds))
	args := make([]any, 0, len(f.conds))
	for i, c := range f.conds {
		col := pq.QuoteIdentifier(c.Field)
		n := firstArg + i
		switch c.Kind {
		case schema.KindInt:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, n))
			args = append(args, c.Int)
		case schema.KindFloat:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, n))
			args = append(args, c.Float)
		default:
			clauses = append(clauses, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, col, n))
			args = append(args, "%"+escapeLike(c.Text)+"%")
		}
	}
	return strings.Join(clauses, " AND "), args
}

// Match evaluates the filter in memory with the same semantics as SQL.
func (f Filter[T]) Match(rec *T) bool {
	for _, c := range f.conds {
		v, ok := f.fields.Value(rec, c.Field)
		if !ok || v.Null {
			return false
		}
		switch c.Kind {
		case schema.KindInt:
			if v.Int != c.Int {
				return false
			}
		case schema.KindFloat:
			if v.Float != c.Float {
				return false
			}
		default:
			if !strings.Contains(strings.ToLower(v.Text), strings.ToLower(c.Text)) {
				return false
			}
		}
	}
	return true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
