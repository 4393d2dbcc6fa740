package service

import (
	"errors"
	"fmt"

	"github.com/smarthome_predictor/backend/internal/artifact"
	"github.com/smarthome_predictor/backend/internal/features"
)

// ValidationError means the request itself is unusable, as opposed to the
// model being unavailable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Error codes used in API responses and per-item batch errors.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeFeatureMismatch = "FEATURE_MISMATCH"
	CodeModelNotReady   = "MODEL_NOT_READY"
	CodePrediction      = "PREDICTION_ERROR"
)

// ErrorCode maps a pipeline error onto its taxonomy code.
func ErrorCode(err error) string {
	var ve *ValidationError
	var fm *features.FeatureMismatchError
	switch {
	case errors.As(err, &ve):
		return CodeValidation
	case errors.As(err, &fm):
		return CodeFeatureMismatch
	case errors.Is(err, artifact.ErrNotReady):
		return CodeModelNotReady
	default:
		return CodePrediction
	}
}
