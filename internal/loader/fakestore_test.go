package loader

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/schema"
	"github.com/shubhampawar16/synthea/internal/types"
)

// fakeStore is an in-memory graph store that executes the exact statement
// shapes the loader generates. It gives the pipeline tests real end-to-end
// semantics (duplicate node instances, ensure-exists edges, aggregates)
// without a running Neo4j.
type fakeStore struct {
	mu sync.Mutex

	nodes       []fakeNode
	edges       map[string]struct{}
	constraints map[string]struct{}
	indexes     map[string]struct{}

	writeCalls []string

	// failWriteContaining makes any write whose statement contains the
	// substring fail, for fault injection.
	failWriteContaining string
}

type fakeNode struct {
	label string
	props map[string]any
}

var (
	createRe = regexp.MustCompile(`^UNWIND \$rows AS row CREATE \(n:(\w+)\) SET n = row$`)
	mergeRe  = regexp.MustCompile(`^UNWIND \$rows AS row MERGE \(n:(\w+) \{(\w+): row\.(\w+)\}\) SET n \+= row$`)
	constrRe = regexp.MustCompile(`^CREATE CONSTRAINT (\w+) IF NOT EXISTS`)
	indexRe  = regexp.MustCompile(`^CREATE INDEX (\w+) IF NOT EXISTS`)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		edges:       make(map[string]struct{}),
		constraints: make(map[string]struct{}),
		indexes:     make(map[string]struct{}),
	}
}

func (s *fakeStore) Connect(ctx context.Context) error { return nil }
func (s *fakeStore) Close(ctx context.Context) error   { return nil }

func (s *fakeStore) Health(ctx context.Context) types.HealthStatus {
	return types.Healthy("fake store")
}

func (s *fakeStore) Write(ctx context.Context, cypher string, params map[string]any) (graph.QuerySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeCalls = append(s.writeCalls, cypher)

	if s.failWriteContaining != "" && strings.Contains(cypher, s.failWriteContaining) {
		return graph.QuerySummary{}, fmt.Errorf("injected failure for %q", s.failWriteContaining)
	}

	if m := createRe.FindStringSubmatch(cypher); m != nil {
		rows := params["rows"].([]any)
		for _, r := range rows {
			s.nodes = append(s.nodes, fakeNode{label: m[1], props: r.(map[string]any)})
		}
		return graph.QuerySummary{NodesCreated: len(rows)}, nil
	}

	if m := mergeRe.FindStringSubmatch(cypher); m != nil {
		label, idProp := m[1], m[2]
		rows := params["rows"].([]any)
		created := 0
		for _, r := range rows {
			props := r.(map[string]any)
			if i := s.findNode(label, idProp, props[idProp]); i >= 0 {
				for k, v := range props {
					s.nodes[i].props[k] = v
				}
				continue
			}
			s.nodes = append(s.nodes, fakeNode{label: label, props: props})
			created++
		}
		return graph.QuerySummary{NodesCreated: created}, nil
	}

	if m := constrRe.FindStringSubmatch(cypher); m != nil {
		if _, ok := s.constraints[m[1]]; ok {
			return graph.QuerySummary{}, nil
		}
		s.constraints[m[1]] = struct{}{}
		return graph.QuerySummary{ConstraintsAdded: 1}, nil
	}

	if m := indexRe.FindStringSubmatch(cypher); m != nil {
		if _, ok := s.indexes[m[1]]; ok {
			return graph.QuerySummary{}, nil
		}
		s.indexes[m[1]] = struct{}{}
		return graph.QuerySummary{IndexesAdded: 1}, nil
	}

	if cypher == "MATCH (n) DETACH DELETE n" {
		deleted := len(s.nodes)
		relsDeleted := len(s.edges)
		s.nodes = nil
		s.edges = make(map[string]struct{})
		return graph.QuerySummary{NodesDeleted: deleted, RelationshipsDeleted: relsDeleted}, nil
	}

	for _, rule := range schema.Rules {
		if cypher == connectCypher(rule) {
			return s.connect(rule), nil
		}
	}

	return graph.QuerySummary{}, fmt.Errorf("fake store: unrecognized statement: %s", cypher)
}

// connect applies one rule's semantics over the in-memory nodes: every owner
// instance is matched against every target instance sharing its key, and an
// edge is created only if the same (owner, target, type) triple is absent.
func (s *fakeStore) connect(rule schema.Rule) graph.QuerySummary {
	created := 0
	for oi, owner := range s.nodes {
		if owner.label != rule.Owner {
			continue
		}
		fk := owner.props[rule.ForeignKey]
		if rule.RequireKey && (fk == nil || fk == "") {
			continue
		}
		if fk == nil || fk == "" {
			// Without the filter the match still finds nothing: no loaded
			// target carries an empty identifier.
			continue
		}
		for ti, target := range s.nodes {
			if target.label != rule.Target || target.props[rule.TargetProperty] != fk {
				continue
			}
			from, to := oi, ti
			if rule.Direction == schema.DirectionIn {
				from, to = ti, oi
			}
			key := fmt.Sprintf("%d->%d:%s", from, to, rule.Type)
			if _, ok := s.edges[key]; ok {
				continue
			}
			s.edges[key] = struct{}{}
			created++
		}
	}
	return graph.QuerySummary{RelationshipsCreated: created}
}

func (s *fakeStore) Query(ctx context.Context, cypher string, params map[string]any) (graph.QueryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.Contains(cypher, "labels(n)[0]"):
		counts := make(map[string]int64)
		for _, n := range s.nodes {
			counts[n.label]++
		}
		return aggregateResult("label", counts), nil
	case strings.Contains(cypher, "type(r)"):
		counts := make(map[string]int64)
		for key := range s.edges {
			typ := key[strings.LastIndex(key, ":")+1:]
			counts[typ]++
		}
		return aggregateResult("type", counts), nil
	default:
		return graph.QueryResult{}, fmt.Errorf("fake store: unrecognized query: %s", cypher)
	}
}

func aggregateResult(column string, counts map[string]int64) graph.QueryResult {
	type pair struct {
		name  string
		count int64
	}
	pairs := make([]pair, 0, len(counts))
	for name, count := range counts {
		pairs = append(pairs, pair{name, count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].name < pairs[j].name
	})

	result := graph.QueryResult{Columns: []string{column, "count"}}
	for _, p := range pairs {
		result.Records = append(result.Records, map[string]any{
			column:  p.name,
			"count": p.count,
		})
	}
	return result
}

func (s *fakeStore) findNode(label, prop string, value any) int {
	for i, n := range s.nodes {
		if n.label == label && n.props[prop] == value {
			return i
		}
	}
	return -1
}

func (s *fakeStore) countLabel(label string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.nodes {
		if n.label == label {
			count++
		}
	}
	return count
}

func (s *fakeStore) countEdges(relType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for key := range s.edges {
		if strings.HasSuffix(key, ":"+relType) {
			count++
		}
	}
	return count
}
