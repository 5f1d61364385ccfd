package query

import (
	"strings"

	"github.com/hupe1980/modelgo/attr"
	"github.com/hupe1980/modelgo/catalog"
)

// Operator represents a comparison operator for attribute filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpIn represents the in list operator.
	OpIn Operator = "in"
	// OpContains represents the contains substring operator.
	OpContains Operator = "contains"
)

// AttrFilter is a single condition over a record's overflow attributes,
// the fields the schema does not interpret.
type AttrFilter struct {
	Key      string
	Operator Operator
	Value    attr.Value
}

// AttrFilterSet is a set of attribute filters that must all match.
type AttrFilterSet struct {
	Filters []AttrFilter
}

// NewAttrFilterSet creates a new attribute filter set.
func NewAttrFilterSet(filters ...AttrFilter) *AttrFilterSet {
	return &AttrFilterSet{Filters: filters}
}

// Matches checks if the provided attribute document matches this filter.
func (f *AttrFilter) Matches(doc attr.Document) bool {
	value, exists := doc[f.Key]
	if !exists {
		return false
	}

	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value)
	case OpNotEqual:
		return !compareEqual(value, f.Value)
	case OpGreaterThan:
		return compareGreater(value, f.Value)
	case OpGreaterEqual:
		return compareGreater(value, f.Value) || compareEqual(value, f.Value)
	case OpLessThan:
		return compareLess(value, f.Value)
	case OpLessEqual:
		return compareLess(value, f.Value) || compareEqual(value, f.Value)
	case OpIn:
		return compareIn(value, f.Value)
	case OpContains:
		return compareContains(value, f.Value)
	default:
		return false
	}
}

// Matches checks if the document matches all filters in the set.
func (fs *AttrFilterSet) Matches(doc attr.Document) bool {
	for _, filter := range fs.Filters {
		if !filter.Matches(doc) {
			return false
		}
	}
	return true
}

// WhereAttrs adapts an attribute filter set into a record predicate
// evaluated against each record's overflow attributes.
func WhereAttrs(fs *AttrFilterSet) Predicate {
	return func(_ string, r *catalog.Record) bool {
		if fs == nil || len(fs.Filters) == 0 {
			return true
		}
		if r.Extra == nil {
			return false
		}
		return fs.Matches(r.Extra)
	}
}

func compareEqual(a, b attr.Value) bool {
	if a.Kind == attr.KindNull && b.Kind == attr.KindNull {
		return true
	}
	if a.Kind == attr.KindNull || b.Kind == attr.KindNull {
		return false
	}

	if isNumber(a) && isNumber(b) {
		// Prefer exact int compare when possible.
		if a.Kind == attr.KindInt && b.Kind == attr.KindInt {
			return a.I64 == b.I64
		}
		return asFloat64(a) == asFloat64(b)
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case attr.KindString:
		return a.StringValue() == b.StringValue()
	case attr.KindBool:
		return a.B == b.B
	case attr.KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !compareEqual(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func compareGreater(a, b attr.Value) bool {
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) > asFloat64(b)
}

func compareLess(a, b attr.Value) bool {
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) < asFloat64(b)
}

func compareIn(a, b attr.Value) bool {
	if b.Kind != attr.KindArray {
		return false
	}
	for _, item := range b.A {
		if compareEqual(a, item) {
			return true
		}
	}
	return false
}

func compareContains(a, b attr.Value) bool {
	if a.Kind != attr.KindString || b.Kind != attr.KindString {
		return false
	}
	return strings.Contains(a.StringValue(), b.StringValue())
}

func isNumber(v attr.Value) bool {
	return v.Kind == attr.KindInt || v.Kind == attr.KindFloat
}

func asFloat64(v attr.Value) float64 {
	if v.Kind == attr.KindInt {
		return float64(v.I64)
	}
	return v.F64
}
