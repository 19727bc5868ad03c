package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/llm/providers"
)

func dialWebsocket(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/ask"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Server greets on connect.
	var hello wsMessage
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "connected", hello.Type)

	return conn
}

func TestWebsocketAsk(t *testing.T) {
	client := graph.NewMockGraphClient()
	client.EnqueueQueryResult(graph.QueryResult{
		Records: []map[string]any{{"count": float64(7)}},
	})
	provider := providers.NewMockProvider([]string{
		"MATCH (c:Condition) RETURN count(c) AS count",
		"There are 7 conditions.",
	})

	conn := dialWebsocket(t, testServer(t, client, provider))

	require.NoError(t, conn.WriteJSON(wsMessage{Question: "how many conditions?"}))

	var (
		streamed string
		final    wsMessage
	)
	for {
		var msg wsMessage
		require.NoError(t, conn.ReadJSON(&msg))

		switch msg.Type {
		case "thinking":
			continue
		case "chunk":
			streamed += msg.Chunk
			continue
		case "answer":
			final = msg
		case "error":
			t.Fatalf("unexpected error frame: %s", msg.Error)
		}
		break
	}

	assert.Equal(t, "There are 7 conditions.", streamed)
	assert.Equal(t, "There are 7 conditions.", final.Answer)
	assert.Equal(t, "MATCH (c:Condition) RETURN count(c) AS count", final.Cypher)
	require.Len(t, final.Results, 1)
	assert.True(t, final.Success)
}

func TestWebsocketAsk_EmptyQuestion(t *testing.T) {
	conn := dialWebsocket(t, testServer(t, graph.NewMockGraphClient(), providers.NewMockProvider(nil)))

	require.NoError(t, conn.WriteJSON(wsMessage{Question: ""}))

	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.NotEmpty(t, msg.Error)
}

func TestWebsocketAsk_ServiceError(t *testing.T) {
	provider := providers.NewMockProvider([]string{"MATCH (n) DETACH DELETE n"})
	conn := dialWebsocket(t, testServer(t, graph.NewMockGraphClient(), provider))

	require.NoError(t, conn.WriteJSON(wsMessage{Question: "drop it all"}))

	for {
		var msg wsMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == "thinking" {
			continue
		}
		assert.Equal(t, "error", msg.Type)
		return
	}
}
