// Package markerstyle evaluates admin-defined marker color rules against
// customer and visit records.
package markerstyle

import "strings"

// Target is the entity kind a rule applies to.
type Target int

const (
	TargetUnknown Target = iota
	TargetCustomer
	TargetVisit
)

// Stored target labels.
const (
	TargetCustomerLabel = "顧客情報"
	TargetVisitLabel    = "訪問予定"
)

// ParseTarget maps a stored label to a Target. Unrecognized labels yield
// TargetUnknown, which no record has.
func ParseTarget(s string) Target {
	switch strings.TrimSpace(s) {
	case TargetCustomerLabel:
		return TargetCustomer
	case TargetVisitLabel:
		return TargetVisit
	default:
		return TargetUnknown
	}
}

func (t Target) String() string {
	switch t {
	case TargetCustomer:
		return TargetCustomerLabel
	case TargetVisit:
		return TargetVisitLabel
	default:
		return ""
	}
}

// Condition is the comparison a rule performs.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionContains
	ConditionEquals
	ConditionNotContains
	ConditionNotEquals
)

// Stored condition labels.
const (
	ContainsLabel    = "含む"
	EqualsLabel      = "等しい"
	NotContainsLabel = "含まない"
	NotEqualsLabel   = "等しくない"
)

// ParseCondition maps a stored label to a Condition. Unrecognized labels
// yield ConditionUnknown, which never matches.
func ParseCondition(s string) Condition {
	switch strings.TrimSpace(s) {
	case ContainsLabel:
		return ConditionContains
	case EqualsLabel:
		return ConditionEquals
	case NotContainsLabel:
		return ConditionNotContains
	case NotEqualsLabel:
		return ConditionNotEquals
	default:
		return ConditionUnknown
	}
}

func (c Condition) String() string {
	switch c {
	case ConditionContains:
		return ContainsLabel
	case ConditionEquals:
		return EqualsLabel
	case ConditionNotContains:
		return NotContainsLabel
	case ConditionNotEquals:
		return NotEqualsLabel
	default:
		return ""
	}
}

// Targets and Conditions list the labels offered by the admin console.
var (
	Targets    = []Target{TargetCustomer, TargetVisit}
	Conditions = []Condition{ConditionContains, ConditionEquals, ConditionNotContains, ConditionNotEquals}
)
