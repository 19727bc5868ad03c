// Package chat implements the natural-language question answering service:
// a question becomes a generated Cypher query, the query runs against the
// graph, and a second model call turns the results into a readable answer.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/llm"
	"github.com/shubhampawar16/synthea/internal/types"
)

// maxResultRows caps how many result rows are serialized into the answer
// prompt.
const maxResultRows = 25

// Answer is the full response to one question.
type Answer struct {
	RequestID string           `json:"request_id"`
	Answer    string           `json:"answer"`
	Cypher    string           `json:"cypher_query,omitempty"`
	Results   []map[string]any `json:"raw_results,omitempty"`
}

// Service answers natural-language questions against the graph. The graph
// client and provider are owned by the caller; Close releases neither.
type Service struct {
	client   graph.GraphClient
	provider llm.Provider
	logger   *slog.Logger
}

// NewService creates a chat Service.
func NewService(client graph.GraphClient, provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:   client,
		provider: provider,
		logger:   logger,
	}
}

// Ask answers one question: generate Cypher, execute it, summarize the
// results. The generated query and raw results are returned alongside the
// answer so callers can show their work.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	requestID := uuid.New().String()

	cypher, records, err := s.queryForQuestion(ctx, requestID, question)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			llm.NewSystemMessage(answerSystemPrompt()),
			llm.NewUserMessage(answerUserPrompt(question, serializeResults(records))),
		},
	})
	if err != nil {
		return nil, types.WrapError(ErrCodeAnswerGeneration, "summarizing results", err)
	}

	return &Answer{
		RequestID: requestID,
		Answer:    strings.TrimSpace(resp.Content),
		Cypher:    cypher,
		Results:   records,
	}, nil
}

// AskStream answers one question, streaming the answer text as it is
// generated. The Cypher generation and query execution phases complete
// before the first chunk; the returned cypher and results describe them.
func (s *Service) AskStream(ctx context.Context, question string) (string, []map[string]any, <-chan llm.StreamChunk, error) {
	requestID := uuid.New().String()

	cypher, records, err := s.queryForQuestion(ctx, requestID, question)
	if err != nil {
		return "", nil, nil, err
	}

	chunks, err := s.provider.Stream(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			llm.NewSystemMessage(answerSystemPrompt()),
			llm.NewUserMessage(answerUserPrompt(question, serializeResults(records))),
		},
	})
	if err != nil {
		return "", nil, nil, types.WrapError(ErrCodeAnswerGeneration, "streaming answer", err)
	}

	return cypher, records, chunks, nil
}

// queryForQuestion runs the generate-and-execute phase shared by Ask and
// AskStream.
func (s *Service) queryForQuestion(ctx context.Context, requestID, question string) (string, []map[string]any, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil, types.NewError(ErrCodeEmptyQuestion, "question cannot be empty")
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			llm.NewSystemMessage(cypherSystemPrompt()),
			llm.NewUserMessage(question),
		},
	})
	if err != nil {
		return "", nil, types.WrapError(ErrCodeCypherGeneration, "generating query", err)
	}

	cypher := extractCypher(resp.Content)
	if cypher == "" {
		return "", nil, types.NewError(ErrCodeCypherGeneration, "model returned no query")
	}
	if !isReadOnly(cypher) {
		s.logger.Warn("rejected generated query", "request_id", requestID, "cypher", cypher)
		return "", nil, types.NewError(ErrCodeCypherRejected,
			"generated query contains a write clause")
	}

	s.logger.Info("executing generated query", "request_id", requestID, "cypher", cypher)

	result, err := s.client.Query(ctx, cypher, nil)
	if err != nil {
		return "", nil, types.WrapError(ErrCodeQueryExecution,
			fmt.Sprintf("executing %q", cypher), err)
	}

	return cypher, result.Records, nil
}

// Stats returns node counts by label, descending.
func (s *Service) Stats(ctx context.Context) ([]map[string]any, error) {
	result, err := s.client.Query(ctx, `
		MATCH (n)
		RETURN labels(n)[0] AS label, count(*) AS count
		ORDER BY count DESC
	`, nil)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// SamplePatients returns up to limit patient rows for quick inspection.
func (s *Service) SamplePatients(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 5
	}
	result, err := s.client.Query(ctx, `
		MATCH (p:Patient)
		RETURN p.firstName AS firstName, p.lastName AS lastName,
		       p.gender AS gender, p.birthDate AS birthDate
		LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// Health reports the combined health of the graph and the provider.
func (s *Service) Health(ctx context.Context) (graphHealth, llmHealth types.HealthStatus) {
	return s.client.Health(ctx), s.provider.Health(ctx)
}

// serializeResults renders query records as JSON lines for the answer
// prompt, truncated to maxResultRows.
func serializeResults(records []map[string]any) string {
	if len(records) == 0 {
		return "(no results)"
	}

	shown := records
	truncated := false
	if len(shown) > maxResultRows {
		shown = shown[:maxResultRows]
		truncated = true
	}

	var b strings.Builder
	for _, rec := range shown {
		line, err := json.Marshal(rec)
		if err != nil {
			fmt.Fprintf(&b, "%v\n", rec)
			continue
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	if truncated {
		fmt.Fprintf(&b, "(%d more rows omitted)\n", len(records)-maxResultRows)
	}
	return b.String()
}
