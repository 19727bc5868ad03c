package chat

import "github.com/shubhampawar16/synthea/internal/types"

const (
	ErrCodeEmptyQuestion    types.ErrorCode = "CHAT_EMPTY_QUESTION"
	ErrCodeCypherGeneration types.ErrorCode = "CHAT_CYPHER_GENERATION_FAILED"
	ErrCodeCypherRejected   types.ErrorCode = "CHAT_CYPHER_REJECTED"
	ErrCodeQueryExecution   types.ErrorCode = "CHAT_QUERY_EXECUTION_FAILED"
	ErrCodeAnswerGeneration types.ErrorCode = "CHAT_ANSWER_GENERATION_FAILED"
)
