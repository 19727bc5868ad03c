package schema

import (
	"fmt"
	"strconv"

	"github.com/shubhampawar16/synthea/internal/types"
)

// Coerce converts one raw CSV cell into a typed property value according to
// the field's coercion kind.
//
// Empty cells in numeric columns become nil, never zero. The distinction
// matters downstream: Neo4j's null propagation keeps a patient with no
// recorded income out of income aggregates, where a spurious 0.0 would skew
// them.
func Coerce(raw string, kind Kind) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindFloat:
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, types.WrapError(ErrCodeCoerceFailed,
				fmt.Sprintf("not a float: %q", raw), err)
		}
		return v, nil
	case KindInt:
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, types.WrapError(ErrCodeCoerceFailed,
				fmt.Sprintf("not an integer: %q", raw), err)
		}
		return v, nil
	default:
		return nil, types.NewError(ErrCodeCoerceFailed,
			fmt.Sprintf("unknown coercion kind %q", kind))
	}
}

// CoerceRow converts one raw row (column name to cell) into a property map
// for the given entity. Missing cells are treated as empty strings before
// coercion. Every mapped property is present in the result; absence of a
// value is represented by an empty string or a nil numeric, never by a
// missing key.
func CoerceRow(e EntitySpec, raw map[string]string) (map[string]any, error) {
	props := make(map[string]any, len(e.Fields))
	for _, f := range e.Fields {
		v, err := Coerce(raw[f.Column], f.Kind)
		if err != nil {
			return nil, types.WrapError(ErrCodeCoerceFailed,
				fmt.Sprintf("%s column %s", e.Label, f.Column), err)
		}
		props[f.Property] = v
	}
	return props, nil
}
