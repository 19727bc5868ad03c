package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaDescription(t *testing.T) {
	desc := SchemaDescription()

	assert.Contains(t, desc, "- Patient: id, birthDate")
	assert.Contains(t, desc, "- ClaimTransaction:")
	assert.Contains(t, desc, "(Patient)-[:HAD_ENCOUNTER]->(Encounter)")
	assert.Contains(t, desc, "(Encounter)-[:ATTENDED_BY]->(Provider)")
	assert.Contains(t, desc, "(Provider)-[:EMPLOYED_BY]->(Organization)")
	assert.Contains(t, desc, "(Claim)-[:SECONDARY_INSURANCE]->(Payer)")
}

func TestExtractCypher(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare query",
			in:   "MATCH (p:Patient) RETURN count(p)",
			want: "MATCH (p:Patient) RETURN count(p)",
		},
		{
			name: "fenced with language tag",
			in:   "```cypher\nMATCH (p:Patient) RETURN count(p)\n```",
			want: "MATCH (p:Patient) RETURN count(p)",
		},
		{
			name: "fenced without tag",
			in:   "```\nMATCH (n) RETURN n LIMIT 5\n```",
			want: "MATCH (n) RETURN n LIMIT 5",
		},
		{
			name: "surrounding whitespace",
			in:   "  \nMATCH (n) RETURN n\n  ",
			want: "MATCH (n) RETURN n",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractCypher(tt.in))
		})
	}
}

func TestIsReadOnly(t *testing.T) {
	assert.True(t, isReadOnly("MATCH (p:Patient) RETURN count(p)"))
	assert.True(t, isReadOnly("MATCH (p)-[:HAD_ENCOUNTER]->(e) RETURN p.lastName LIMIT 10"))

	assert.False(t, isReadOnly("MATCH (n) DETACH DELETE n"))
	assert.False(t, isReadOnly("CREATE (n:Patient {id: 'x'})"))
	assert.False(t, isReadOnly("MERGE (a)-[:KNOWS]->(b)"))
	assert.False(t, isReadOnly("MATCH (n) SET n.hacked = true"))
}
