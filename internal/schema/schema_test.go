package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Registry(t *testing.T) {
	// The shipped registry must always pass its own startup check.
	require.NoError(t, Validate())
}

func TestRegistry_EntityCount(t *testing.T) {
	assert.Len(t, Entities, 18)
}

func TestRegistry_ConstrainedEntities(t *testing.T) {
	constrained := ConstrainedEntities()

	labels := make([]string, 0, len(constrained))
	for _, e := range constrained {
		assert.Equal(t, "id", e.IDProperty)
		labels = append(labels, e.Label)
	}

	assert.Equal(t, []string{
		"Patient", "Organization", "Provider", "Payer",
		"Encounter", "CarePlan", "Claim", "ClaimTransaction",
	}, labels)
}

func TestRegistry_ImagingStudyUnconstrained(t *testing.T) {
	// ImagingStudy carries an id column but is addressed only through its
	// patient and encounter, so it stays in the unidentified class.
	e, ok := EntityByLabel("ImagingStudy")
	require.True(t, ok)
	assert.False(t, e.Identified())
	assert.True(t, hasProperty(e, "id"))
}

func TestRulesFor_Grouping(t *testing.T) {
	tests := []struct {
		owner string
		types []string
	}{
		{"Provider", []string{"EMPLOYED_BY"}},
		{"Encounter", []string{"HAD_ENCOUNTER", "OCCURRED_AT", "ATTENDED_BY", "COVERED_BY"}},
		{"Medication", []string{"PRESCRIBED", "PRESCRIBED_MEDICATION", "PAID_BY"}},
		{"Claim", []string{"FILED_CLAIM", "SUBMITTED_BY", "PRIMARY_INSURANCE", "SECONDARY_INSURANCE", "FOR_ENCOUNTER"}},
		{"ClaimTransaction", []string{"HAS_TRANSACTION", "FOR_PATIENT", "SERVICE_AT", "PERFORMED_BY", "DURING_ENCOUNTER"}},
		{"Patient", nil},
	}

	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			rules := RulesFor(tt.owner)
			got := make([]string, 0, len(rules))
			for _, r := range rules {
				got = append(got, r.Type)
			}
			if tt.types == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.types, got)
			}
		})
	}
}

func TestRules_DistinctSamePairRules(t *testing.T) {
	// Primary and secondary insurance connect the same labels with different
	// semantics; both must exist as independent rules.
	var primary, secondary *Rule
	for i, r := range Rules {
		if r.Owner == "Claim" && r.Target == "Payer" {
			switch r.Type {
			case "PRIMARY_INSURANCE":
				primary = &Rules[i]
			case "SECONDARY_INSURANCE":
				secondary = &Rules[i]
			}
		}
	}

	require.NotNil(t, primary)
	require.NotNil(t, secondary)
	assert.Equal(t, "primaryInsuranceId", primary.ForeignKey)
	assert.Equal(t, "secondaryInsuranceId", secondary.ForeignKey)
	assert.True(t, secondary.RequireKey)
}

func TestValidate_MalformedRegistries(t *testing.T) {
	base := []EntitySpec{
		{Label: "Patient", File: "patients.csv", IDProperty: "id", Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
		}},
	}

	tests := []struct {
		name     string
		entities []EntitySpec
		indexes  []Index
		rules    []Rule
	}{
		{
			name: "empty property name",
			entities: []EntitySpec{{Label: "X", File: "x.csv", Fields: []Field{
				{Column: "A", Property: "", Kind: KindString},
			}}},
		},
		{
			name: "unknown coercion kind",
			entities: []EntitySpec{{Label: "X", File: "x.csv", Fields: []Field{
				{Column: "A", Property: "a", Kind: Kind("decimal")},
			}}},
		},
		{
			name: "duplicate property",
			entities: []EntitySpec{{Label: "X", File: "x.csv", Fields: []Field{
				{Column: "A", Property: "a", Kind: KindString},
				{Column: "B", Property: "a", Kind: KindString},
			}}},
		},
		{
			name: "identifier not mapped",
			entities: []EntitySpec{{Label: "X", File: "x.csv", IDProperty: "id", Fields: []Field{
				{Column: "A", Property: "a", Kind: KindString},
			}}},
		},
		{
			name:     "index on unknown label",
			entities: base,
			indexes:  []Index{{Label: "Nope", Property: "id"}},
		},
		{
			name:     "rule with unknown foreign key",
			entities: base,
			rules: []Rule{{Owner: "Patient", ForeignKey: "nope", Target: "Patient",
				TargetProperty: "id", Type: "SELF", Direction: DirectionOut}},
		},
		{
			name:     "rule matching non-identifier target property",
			entities: base,
			rules: []Rule{{Owner: "Patient", ForeignKey: "id", Target: "Patient",
				TargetProperty: "ssn", Type: "SELF", Direction: DirectionOut}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.entities, tt.indexes, tt.rules)
			require.Error(t, err)
			assert.ErrorContains(t, err, "SCHEMA_INVALID")
		})
	}
}

func TestEntitySpec_Columns(t *testing.T) {
	e, ok := EntityByLabel("Supply")
	require.True(t, ok)
	assert.Equal(t, []string{"DATE", "PATIENT", "ENCOUNTER", "CODE", "DESCRIPTION", "QUANTITY"}, e.Columns())
}
