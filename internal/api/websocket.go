package api

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// wsMessage is the envelope for every websocket frame, both directions.
type wsMessage struct {
	Type     string           `json:"type"`
	Question string           `json:"question,omitempty"`
	Message  string           `json:"message,omitempty"`
	Answer   string           `json:"answer,omitempty"`
	Chunk    string           `json:"chunk,omitempty"`
	Cypher   string           `json:"cypher_query,omitempty"`
	Results  []map[string]any `json:"raw_results,omitempty"`
	Error    string           `json:"error,omitempty"`
	Success  bool             `json:"success"`
}

// handleWebsocketAsk serves a persistent question/answer session. Each
// inbound frame carries one question; the answer streams back as chunk
// frames followed by a final answer frame with the generated query and raw
// results.
func (s *Server) handleWebsocketAsk(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	_ = conn.WriteJSON(wsMessage{
		Type:    "connected",
		Message: "connected to the healthcare chat service",
		Success: true,
	})

	for {
		var in wsMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket closed unexpectedly", "error", err)
			}
			return
		}

		if in.Question == "" {
			_ = conn.WriteJSON(wsMessage{
				Type:  "error",
				Error: "question cannot be empty",
			})
			continue
		}

		s.answerOverWebsocket(r, conn, in.Question)
	}
}

// answerOverWebsocket streams one answer for one question.
func (s *Server) answerOverWebsocket(r *http.Request, conn *websocket.Conn, question string) {
	_ = conn.WriteJSON(wsMessage{Type: "thinking", Success: true})

	cypher, results, chunks, err := s.service.AskStream(r.Context(), question)
	if err != nil {
		_ = conn.WriteJSON(wsMessage{Type: "error", Error: err.Error()})
		return
	}

	var answer string
	for chunk := range chunks {
		if chunk.Err != nil {
			_ = conn.WriteJSON(wsMessage{Type: "error", Error: chunk.Err.Error()})
			return
		}
		answer += chunk.Content
		if err := conn.WriteJSON(wsMessage{Type: "chunk", Chunk: chunk.Content, Success: true}); err != nil {
			return
		}
	}

	_ = conn.WriteJSON(wsMessage{
		Type:    "answer",
		Answer:  answer,
		Cypher:  cypher,
		Results: results,
		Success: true,
	})
}
