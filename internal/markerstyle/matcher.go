package markerstyle

import (
	"strings"

	"visit-map-api/internal/models"
)

// Match reports whether rule's condition holds for rec's value of
// rule.FieldName. It does not check the rule target.
//
// Unknown fields, null values, empty match values and unknown conditions
// never match, including for the negated conditions.
func Match(rule models.MarkerColorSetting, rec Record) bool {
	return matchCondition(ParseCondition(rule.MatchCondition), rule.FieldName, rule.MatchValue, rec)
}

func matchCondition(cond Condition, field, want string, rec Record) bool {
	if want == "" || rec == nil {
		return false
	}
	v, ok := rec.Value(field)
	if !ok || v.Null {
		return false
	}
	got := v.String()

	switch cond {
	case ConditionContains:
		return strings.Contains(got, want)
	case ConditionEquals:
		return got == want
	case ConditionNotContains:
		return !strings.Contains(got, want)
	case ConditionNotEquals:
		return got != want
	default:
		return false
	}
}
