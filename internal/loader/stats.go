package loader

import (
	"context"
	"time"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/types"
)

// LabelCount is one row of the node-count aggregate.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// TypeCount is one row of the relationship-count aggregate.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// Report summarizes one pipeline run: rows written per entity, relationships
// created per rule type, the post-load store aggregates, and wall-clock time.
type Report struct {
	NodesWritten         map[string]int `json:"nodes_written"`
	RelationshipsCreated map[string]int `json:"relationships_created"`
	NodeCounts           []LabelCount   `json:"node_counts"`
	RelationshipCounts   []TypeCount    `json:"relationship_counts"`
	Elapsed              time.Duration  `json:"elapsed"`
}

// Stats runs the two read-only aggregates the loader exposes: node count by
// label and relationship count by type, both ordered by descending count.
func Stats(ctx context.Context, client graph.GraphClient) ([]LabelCount, []TypeCount, error) {
	nodeResult, err := client.Query(ctx, `
		MATCH (n)
		RETURN labels(n)[0] AS label, count(*) AS count
		ORDER BY count DESC
	`, nil)
	if err != nil {
		return nil, nil, types.WrapError(ErrCodeStatsFailed, "node counts", err)
	}

	nodes := make([]LabelCount, 0, len(nodeResult.Records))
	for _, rec := range nodeResult.Records {
		nodes = append(nodes, LabelCount{
			Label: asString(rec["label"]),
			Count: asInt64(rec["count"]),
		})
	}

	relResult, err := client.Query(ctx, `
		MATCH ()-[r]->()
		RETURN type(r) AS type, count(*) AS count
		ORDER BY count DESC
	`, nil)
	if err != nil {
		return nil, nil, types.WrapError(ErrCodeStatsFailed, "relationship counts", err)
	}

	rels := make([]TypeCount, 0, len(relResult.Records))
	for _, rec := range relResult.Records {
		rels = append(rels, TypeCount{
			Type:  asString(rec["type"]),
			Count: asInt64(rec["count"]),
		})
	}

	return nodes, rels, nil
}

// Wipe removes every node and relationship from the store. This is the only
// delete path and is never part of the per-entity load.
func Wipe(ctx context.Context, client graph.GraphClient) error {
	if _, err := client.Write(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return types.WrapError(ErrCodeWipeFailed, "detach delete", err)
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case int:
		return int64(n)
	default:
		return 0
	}
}
