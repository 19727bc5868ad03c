package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/schema"
	"github.com/shubhampawar16/synthea/internal/types"
)

// Resolver executes foreign-key resolution passes. One generic statement
// shape serves every rule, which keeps null handling and the ensure-exists
// edge contract uniform across all 34 passes.
type Resolver struct {
	client graph.GraphClient
}

// NewResolver creates a Resolver using the given graph client.
func NewResolver(client graph.GraphClient) *Resolver {
	return &Resolver{client: client}
}

// Connect runs one match-and-connect pass over already-loaded nodes and
// returns the number of relationships created.
//
// Edges are MERGEd, so re-running a rule never duplicates an edge between
// the same two node instances. A foreign key with no matching target node
// simply produces no relationship; that is expected when source data
// references entities outside the loaded set.
func (r *Resolver) Connect(ctx context.Context, rule schema.Rule) (int, error) {
	summary, err := r.client.Write(ctx, connectCypher(rule), nil)
	if err != nil {
		return 0, types.WrapError(ErrCodeResolveFailed,
			fmt.Sprintf("rule %s (%s -> %s)", rule.Type, rule.Owner, rule.Target), err)
	}
	return summary.RelationshipsCreated, nil
}

// connectCypher builds the match-and-connect statement for one rule. Labels,
// property names, and relationship types come from the static registry, never
// from user input; row values are never interpolated.
func connectCypher(rule schema.Rule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MATCH (owner:%s)\n", rule.Owner)
	if rule.RequireKey {
		// Skip rows with an absent key entirely: no match attempt, no error.
		fmt.Fprintf(&b, "WHERE owner.%s IS NOT NULL AND owner.%s <> ''\n",
			rule.ForeignKey, rule.ForeignKey)
	}
	fmt.Fprintf(&b, "MATCH (target:%s {%s: owner.%s})\n",
		rule.Target, rule.TargetProperty, rule.ForeignKey)

	switch rule.Direction {
	case schema.DirectionIn:
		fmt.Fprintf(&b, "MERGE (target)-[:%s]->(owner)", rule.Type)
	default:
		fmt.Fprintf(&b, "MERGE (owner)-[:%s]->(target)", rule.Type)
	}

	return b.String()
}
