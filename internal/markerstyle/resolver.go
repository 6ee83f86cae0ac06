package markerstyle

import (
	"sort"

	"visit-map-api/internal/models"
)

// Style is the outcome of a matched rule.
type Style struct {
	Color       string `json:"color"`
	MarkerStyle string `json:"marker_style"`
}

type compiledRule struct {
	target Target
	cond   Condition
	field  string
	value  string
	style  Style
}

// Resolver evaluates a fixed rule set. Rules are parsed and ordered once.
type Resolver struct {
	rules []compiledRule
}

// NewResolver orders rules by priority (nulls last, ties by id) and compiles them.
func NewResolver(rules []models.MarkerColorSetting) *Resolver {
	ordered := Order(rules)
	r := &Resolver{rules: make([]compiledRule, 0, len(ordered))}
	for _, rule := range ordered {
		r.rules = append(r.rules, compiledRule{
			target: ParseTarget(rule.Target),
			cond:   ParseCondition(rule.MatchCondition),
			field:  rule.FieldName,
			value:  rule.MatchValue,
			style:  Style{Color: rule.Color, MarkerStyle: rule.MarkerStyle},
		})
	}
	return r
}

// Order returns a copy of rules sorted by ascending priority. Rules without a
// priority come after all numbered ones; ties keep id order.
func Order(rules []models.MarkerColorSetting) []models.MarkerColorSetting {
	out := make([]models.MarkerColorSetting, len(rules))
	copy(out, rules)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Priority == nil && b.Priority == nil:
			return a.ID < b.ID
		case a.Priority == nil:
			return false
		case b.Priority == nil:
			return true
		case *a.Priority != *b.Priority:
			return *a.Priority < *b.Priority
		default:
			return a.ID < b.ID
		}
	})
	return out
}

// Resolve returns the style of the first rule targeting rec's kind whose
// condition matches. ok is false when nothing matched.
func (r *Resolver) Resolve(rec Record) (Style, bool) {
	if r == nil || rec == nil {
		return Style{}, false
	}
	kind := rec.Kind()
	for _, rule := range r.rules {
		if rule.target != kind {
			continue
		}
		if matchCondition(rule.cond, rule.field, rule.value, rec) {
			return rule.style, true
		}
	}
	return Style{}, false
}

// ResolveCustomer styles a customer marker in one pass over the rule order.
// A customer rule is checked against c, a visit rule against each of visits;
// the first rule that matches wins regardless of its target.
func (r *Resolver) ResolveCustomer(c *models.Customer, visits []models.VisitSchedule) (Style, bool) {
	if r == nil {
		return Style{}, false
	}
	customer := CustomerRecord(c)
	for _, rule := range r.rules {
		switch rule.target {
		case TargetCustomer:
			if c != nil && matchCondition(rule.cond, rule.field, rule.value, customer) {
				return rule.style, true
			}
		case TargetVisit:
			for i := range visits {
				if matchCondition(rule.cond, rule.field, rule.value, VisitRecord(&visits[i])) {
					return rule.style, true
				}
			}
		}
	}
	return Style{}, false
}

// Apply sets the marker's color and style when a rule matches and reports
// whether one did.
func (r *Resolver) Apply(m *models.Marker, c *models.Customer, visits []models.VisitSchedule) bool {
	s, ok := r.ResolveCustomer(c, visits)
	if ok {
		m.Color = s.Color
		m.MarkerStyle = s.MarkerStyle
	}
	return ok
}

// AssignPriorities fills missing priorities with the rule's 1-based position.
func AssignPriorities(rules []models.MarkerColorSetting) []models.MarkerColorSetting {
	out := make([]models.MarkerColorSetting, len(rules))
	for i, rule := range rules {
		if rule.Priority == nil {
			p := i + 1
			rule.Priority = &p
		}
		out[i] = rule
	}
	return out
}
