package chat

import (
	"fmt"
	"strings"

	"github.com/shubhampawar16/synthea/internal/schema"
)

// SchemaDescription renders the graph schema as text for prompts and the
// schema endpoint: every label with its properties, then every relationship
// pattern. Generated from the registry so it never drifts from what the
// loader actually writes.
func SchemaDescription() string {
	var b strings.Builder

	b.WriteString("NODE TYPES:\n")
	for _, e := range schema.Entities {
		props := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			props = append(props, f.Property)
		}
		fmt.Fprintf(&b, "- %s: %s\n", e.Label, strings.Join(props, ", "))
	}

	b.WriteString("\nRELATIONSHIPS:\n")
	for _, r := range schema.Rules {
		if r.Direction == schema.DirectionIn {
			fmt.Fprintf(&b, "- (%s)-[:%s]->(%s)\n", r.Target, r.Type, r.Owner)
		} else {
			fmt.Fprintf(&b, "- (%s)-[:%s]->(%s)\n", r.Owner, r.Type, r.Target)
		}
	}

	return b.String()
}

// cypherSystemPrompt instructs the model to emit exactly one executable
// read-only Cypher statement.
func cypherSystemPrompt() string {
	return fmt.Sprintf(`You are an expert Neo4j Cypher query generator for a Synthea healthcare database.
Convert the user's natural language question into one precise Cypher query.

Database schema:
%s
Rules:
1. Property names are case-sensitive camelCase (firstName, birthDate, totalClaimCost).
2. Use date() for date handling; compute age with duration.between(date(p.birthDate), date()).years.
3. Use toLower() for case-insensitive text matching and CONTAINS for partial matches.
4. Use count(DISTINCT ...) for patient counts and add LIMIT 10 unless the question asks for all results.
5. Generate only read queries: never CREATE, MERGE, DELETE, SET, or REMOVE.

Output only the raw Cypher query. No explanations, no markdown, no code fences.`, SchemaDescription())
}

// answerSystemPrompt instructs the model to summarize query results.
func answerSystemPrompt() string {
	return `You are a helpful healthcare data assistant. Answer the user's question using only the
database results provided. State specific numbers and names from the results. Format lists as
numbered items. If the results are empty, say that nothing matched. Be concise.`
}

// answerUserPrompt binds the question and the serialized results.
func answerUserPrompt(question, results string) string {
	return fmt.Sprintf("Question: %s\n\nDatabase results:\n%s\n\nAnswer:", question, results)
}

// extractCypher strips markdown fencing and a leading "cypher" language tag
// from a model response, returning the bare statement.
func extractCypher(response string) string {
	s := strings.TrimSpace(response)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
	}

	s = strings.TrimSpace(s)
	for _, tag := range []string{"cypher\n", "Cypher\n", "cypher "} {
		if strings.HasPrefix(s, tag) {
			s = s[len(tag):]
			break
		}
	}

	return strings.TrimSpace(s)
}

// isReadOnly reports whether the statement avoids every write clause.
// Generated queries must never mutate the store.
func isReadOnly(cypher string) bool {
	upper := strings.ToUpper(cypher)
	for _, clause := range []string{"CREATE ", "MERGE ", "DELETE ", "DETACH ", "SET ", "REMOVE ", "DROP "} {
		if strings.Contains(upper, clause) {
			return false
		}
	}
	return true
}
