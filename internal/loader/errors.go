package loader

import "github.com/shubhampawar16/synthea/internal/types"

// Loader error codes
const (
	ErrCodeSourceUnreadable types.ErrorCode = "LOADER_SOURCE_UNREADABLE"
	ErrCodeBatchFailed      types.ErrorCode = "LOADER_BATCH_FAILED"
	ErrCodeResolveFailed    types.ErrorCode = "LOADER_RESOLVE_FAILED"
	ErrCodeSetupFailed      types.ErrorCode = "LOADER_SCHEMA_SETUP_FAILED"
	ErrCodeStatsFailed      types.ErrorCode = "LOADER_STATS_FAILED"
	ErrCodeWipeFailed       types.ErrorCode = "LOADER_WIPE_FAILED"
	ErrCodeInvalidNodeMode  types.ErrorCode = "LOADER_INVALID_NODE_MODE"
)
