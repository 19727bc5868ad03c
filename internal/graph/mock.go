package graph

import (
	"context"
	"sync"
	"time"

	"github.com/shubhampawar16/synthea/internal/types"
)

// MockCall represents a recorded method call on the mock graph client.
type MockCall struct {
	Method    string
	Cypher    string
	Params    map[string]any
	Timestamp time.Time
}

// MockGraphClient is a mock implementation of GraphClient for testing.
// It records every call for verification and returns configurable responses:
// either queued results popped in FIFO order, or per-call behavior via the
// QueryFunc/WriteFunc hooks.
type MockGraphClient struct {
	mu sync.RWMutex

	connected  bool
	closeCount int
	calls      []MockCall

	queryResults   []QueryResult
	writeSummaries []QuerySummary
	queryError     error
	writeError     error
	connectError   error
	closeError     error

	// QueryFunc, when set, handles Query calls instead of the queued results.
	QueryFunc func(cypher string, params map[string]any) (QueryResult, error)

	// WriteFunc, when set, handles Write calls instead of the queued summaries.
	WriteFunc func(cypher string, params map[string]any) (QuerySummary, error)
}

// NewMockGraphClient creates a new mock graph client for testing.
func NewMockGraphClient() *MockGraphClient {
	return &MockGraphClient{}
}

// Connect records the call and simulates connection.
func (m *MockGraphClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Connect", "", nil)

	if m.connectError != nil {
		return m.connectError
	}

	m.connected = true
	return nil
}

// Close records the call and simulates disconnection.
func (m *MockGraphClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close", "", nil)
	m.closeCount++

	if m.closeError != nil {
		return m.closeError
	}

	m.connected = false
	return nil
}

// Health records the call and reports based on connection state.
func (m *MockGraphClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Health", "", nil)

	if !m.connected {
		return types.Unhealthy("not connected")
	}
	return types.Healthy("mock graph client")
}

// Query records the call and returns the next queued result, or delegates to
// QueryFunc when set.
func (m *MockGraphClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	m.record("Query", cypher, params)
	queryFunc := m.QueryFunc
	queryErr := m.queryError

	var queued QueryResult
	var hasQueued bool
	if queryFunc == nil && queryErr == nil && len(m.queryResults) > 0 {
		queued = m.queryResults[0]
		m.queryResults = m.queryResults[1:]
		hasQueued = true
	}
	m.mu.Unlock()

	if queryFunc != nil {
		return queryFunc(cypher, params)
	}
	if queryErr != nil {
		return QueryResult{}, queryErr
	}
	if hasQueued {
		return queued, nil
	}
	return QueryResult{}, nil
}

// Write records the call and returns the next queued summary, or delegates to
// WriteFunc when set.
func (m *MockGraphClient) Write(ctx context.Context, cypher string, params map[string]any) (QuerySummary, error) {
	m.mu.Lock()
	m.record("Write", cypher, params)
	writeFunc := m.WriteFunc
	writeErr := m.writeError

	var queued QuerySummary
	var hasQueued bool
	if writeFunc == nil && writeErr == nil && len(m.writeSummaries) > 0 {
		queued = m.writeSummaries[0]
		m.writeSummaries = m.writeSummaries[1:]
		hasQueued = true
	}
	m.mu.Unlock()

	if writeFunc != nil {
		return writeFunc(cypher, params)
	}
	if writeErr != nil {
		return QuerySummary{}, writeErr
	}
	if hasQueued {
		return queued, nil
	}
	return QuerySummary{}, nil
}

// record appends a call entry. Callers must hold the lock.
func (m *MockGraphClient) record(method, cypher string, params map[string]any) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Cypher:    cypher,
		Params:    params,
		Timestamp: time.Now(),
	})
}

// EnqueueQueryResult queues a result for a future Query call.
func (m *MockGraphClient) EnqueueQueryResult(r QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryResults = append(m.queryResults, r)
}

// EnqueueWriteSummary queues a summary for a future Write call.
func (m *MockGraphClient) EnqueueWriteSummary(s QuerySummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeSummaries = append(m.writeSummaries, s)
}

// SetQueryError configures Query to fail with the given error.
func (m *MockGraphClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
}

// SetWriteError configures Write to fail with the given error.
func (m *MockGraphClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// SetConnectError configures Connect to fail with the given error.
func (m *MockGraphClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// Calls returns a copy of all recorded calls.
func (m *MockGraphClient) Calls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls for one method.
func (m *MockGraphClient) CallsTo(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []MockCall
	for _, c := range m.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// CloseCount returns how many times Close was called.
func (m *MockGraphClient) CloseCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closeCount
}
