// Package schema is the single source of truth for the Synthea graph model:
// per-entity column-to-property mappings, coercion kinds, uniqueness
// constraints, secondary indexes, and relationship rules. Everything the
// loader writes is generated from this registry.
package schema

import (
	"fmt"

	"github.com/shubhampawar16/synthea/internal/types"
)

// Schema registry error codes
const (
	ErrCodeSchemaInvalid types.ErrorCode = "SCHEMA_INVALID"
	ErrCodeCoerceFailed  types.ErrorCode = "SCHEMA_COERCE_FAILED"
)

// Kind is the coercion rule applied to a raw CSV cell before it becomes a
// node property.
type Kind string

const (
	// KindString passes the cell through unchanged, including empty strings.
	KindString Kind = "string"

	// KindFloat coerces to a 64-bit float; an empty cell becomes null.
	KindFloat Kind = "float"

	// KindInt coerces to a 64-bit integer; an empty cell becomes null.
	KindInt Kind = "int"
)

// Field maps one source CSV column to one node property.
type Field struct {
	Column   string
	Property string
	Kind     Kind
}

// EntitySpec describes how one CSV file becomes nodes of one label.
// IDProperty is empty for entities that carry no stable identifier and are
// never referenced by a foreign key.
type EntitySpec struct {
	Label      string
	File       string
	IDProperty string
	Fields     []Field
}

// Identified reports whether nodes of this entity carry a unique identifier
// property and therefore get a uniqueness constraint.
func (e EntitySpec) Identified() bool {
	return e.IDProperty != ""
}

// Columns returns the source column names in declaration order.
func (e EntitySpec) Columns() []string {
	cols := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// Index declares a secondary index on one (label, property) pair.
type Index struct {
	Label    string
	Property string
}

// Direction controls which way a relationship points relative to the entity
// that carries the foreign key.
type Direction string

const (
	// DirectionOut points from the foreign-key owner to the matched target,
	// e.g. (Provider)-[:EMPLOYED_BY]->(Organization).
	DirectionOut Direction = "out"

	// DirectionIn points from the matched target back to the owner,
	// e.g. (Patient)-[:HAD_ENCOUNTER]->(Encounter) where the patient
	// reference lives on the encounter.
	DirectionIn Direction = "in"
)

// Rule declares one foreign-key resolution pass. The owner label holds the
// foreign-key property; the target label is matched on its identifier
// property. RequireKey rules skip rows whose key is empty or null instead of
// attempting a match.
type Rule struct {
	Owner          string
	ForeignKey     string
	Target         string
	TargetProperty string
	Type           string
	Direction      Direction
	RequireKey     bool
}

// Validate checks the registry for malformed entries: empty labels or
// property names, unknown coercion kinds, duplicate properties per entity,
// and rules referencing unknown labels or properties. The loader calls this
// once at startup and refuses to run against a bad registry.
func Validate() error {
	return validate(Entities, Indexes, Rules)
}

func validate(entities []EntitySpec, indexes []Index, rules []Rule) error {
	byLabel := make(map[string]EntitySpec, len(entities))
	for _, e := range entities {
		if e.Label == "" || e.File == "" {
			return types.NewError(ErrCodeSchemaInvalid, "entity with empty label or file")
		}
		if _, dup := byLabel[e.Label]; dup {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("duplicate entity label %q", e.Label))
		}
		byLabel[e.Label] = e

		props := make(map[string]struct{}, len(e.Fields))
		for _, f := range e.Fields {
			if f.Column == "" || f.Property == "" {
				return types.NewError(ErrCodeSchemaInvalid,
					fmt.Sprintf("%s: field with empty column or property", e.Label))
			}
			switch f.Kind {
			case KindString, KindFloat, KindInt:
			default:
				return types.NewError(ErrCodeSchemaInvalid,
					fmt.Sprintf("%s.%s: unknown coercion kind %q", e.Label, f.Property, f.Kind))
			}
			if _, dup := props[f.Property]; dup {
				return types.NewError(ErrCodeSchemaInvalid,
					fmt.Sprintf("%s: duplicate property %q", e.Label, f.Property))
			}
			props[f.Property] = struct{}{}
		}

		if e.IDProperty != "" {
			if _, ok := props[e.IDProperty]; !ok {
				return types.NewError(ErrCodeSchemaInvalid,
					fmt.Sprintf("%s: identifier property %q not mapped", e.Label, e.IDProperty))
			}
		}
	}

	for _, idx := range indexes {
		e, ok := byLabel[idx.Label]
		if !ok {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("index on unknown label %q", idx.Label))
		}
		if !hasProperty(e, idx.Property) {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("index %s.%s: property not mapped", idx.Label, idx.Property))
		}
	}

	for _, r := range rules {
		owner, ok := byLabel[r.Owner]
		if !ok {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("rule %s: unknown owner label %q", r.Type, r.Owner))
		}
		target, ok := byLabel[r.Target]
		if !ok {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("rule %s: unknown target label %q", r.Type, r.Target))
		}
		if !hasProperty(owner, r.ForeignKey) {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("rule %s: foreign key %s.%s not mapped", r.Type, r.Owner, r.ForeignKey))
		}
		if r.TargetProperty == "" || r.TargetProperty != target.IDProperty {
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("rule %s: target %s matched on %q, not its identifier", r.Type, r.Target, r.TargetProperty))
		}
		switch r.Direction {
		case DirectionOut, DirectionIn:
		default:
			return types.NewError(ErrCodeSchemaInvalid,
				fmt.Sprintf("rule %s: unknown direction %q", r.Type, r.Direction))
		}
	}

	return nil
}

func hasProperty(e EntitySpec, property string) bool {
	for _, f := range e.Fields {
		if f.Property == property {
			return true
		}
	}
	return false
}

// EntityByLabel returns the entity definition for the given label.
func EntityByLabel(label string) (EntitySpec, bool) {
	for _, e := range Entities {
		if e.Label == label {
			return e, true
		}
	}
	return EntitySpec{}, false
}

// RulesFor returns the relationship rules whose foreign key lives on the
// given label, in declaration order. The orchestrator runs these immediately
// after that entity's node pass.
func RulesFor(label string) []Rule {
	var out []Rule
	for _, r := range Rules {
		if r.Owner == label {
			out = append(out, r)
		}
	}
	return out
}

// ConstrainedEntities returns the entities that require a uniqueness
// constraint on their identifier property, in load order.
func ConstrainedEntities() []EntitySpec {
	var out []EntitySpec
	for _, e := range Entities {
		if e.Identified() {
			out = append(out, e)
		}
	}
	return out
}
