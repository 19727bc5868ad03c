package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/schema"
	"github.com/shubhampawar16/synthea/internal/types"
)

// EnsureSchema issues idempotent constraint and index statements before any
// data loads: one uniqueness constraint per identified entity and one index
// per declared (label, property) pair. "Already exists" is recovered locally
// and logged; any other failure is fatal to the run.
func EnsureSchema(ctx context.Context, client graph.GraphClient, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	for _, e := range schema.ConstrainedEntities() {
		stmt := fmt.Sprintf(
			"CREATE CONSTRAINT %s IF NOT EXISTS FOR (n:%s) REQUIRE n.%s IS UNIQUE",
			constraintName(e.Label), e.Label, e.IDProperty)

		summary, err := client.Write(ctx, stmt, nil)
		if err != nil {
			if isAlreadyExists(err) {
				logger.Warn("constraint already exists", "label", e.Label)
				continue
			}
			return types.WrapError(ErrCodeSetupFailed,
				fmt.Sprintf("constraint on %s.%s", e.Label, e.IDProperty), err)
		}
		if summary.ConstraintsAdded > 0 {
			logger.Info("created constraint", "label", e.Label, "property", e.IDProperty)
		}
	}

	for _, idx := range schema.Indexes {
		stmt := fmt.Sprintf(
			"CREATE INDEX %s IF NOT EXISTS FOR (n:%s) ON (n.%s)",
			indexName(idx), idx.Label, idx.Property)

		summary, err := client.Write(ctx, stmt, nil)
		if err != nil {
			if isAlreadyExists(err) {
				logger.Warn("index already exists", "label", idx.Label, "property", idx.Property)
				continue
			}
			return types.WrapError(ErrCodeSetupFailed,
				fmt.Sprintf("index on %s.%s", idx.Label, idx.Property), err)
		}
		if summary.IndexesAdded > 0 {
			logger.Info("created index", "label", idx.Label, "property", idx.Property)
		}
	}

	return nil
}

// isAlreadyExists matches the store's "equivalent schema rule already exists"
// family of errors, which IF NOT EXISTS does not cover on older servers.
func isAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "equivalentschemarulealreadyexists")
}

func constraintName(label string) string {
	return snakeCase(label) + "_id"
}

func indexName(idx schema.Index) string {
	return snakeCase(idx.Label) + "_" + snakeCase(idx.Property)
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
