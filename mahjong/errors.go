package mahjong

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// EvalError 手牌评估的前置条件错误
type EvalError struct {
	Code    string
	Message string
	Context map[string]any
}

func (e *EvalError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Context[k])
	}
	return fmt.Sprintf("[%s] %s (%s)", e.Code, e.Message, strings.Join(parts, " "))
}

// Is matches any EvalError with the same code, so errors.Is works on
// values produced by WithContext.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Code == e.Code
}

func NewEvalError(code, message string) *EvalError {
	return &EvalError{Code: code, Message: message}
}

// WithContext returns a copy; the sentinel values are never mutated.
func (e *EvalError) WithContext(key string, value any) *EvalError {
	out := &EvalError{Code: e.Code, Message: e.Message, Context: make(map[string]any, len(e.Context)+1)}
	maps.Copy(out.Context, e.Context)
	out.Context[key] = value
	return out
}

var (
	ErrInvalidTile         = NewEvalError("INVALID_TILE", "invalid tile notation")
	ErrInvalidHandSize     = NewEvalError("INVALID_HAND_SIZE", "wrong number of tiles for this operation")
	ErrTileOverflow        = NewEvalError("TILE_OVERFLOW", "more than four copies of a tile kind")
	ErrInvalidAvailability = NewEvalError("INVALID_AVAILABILITY", "availability outside 0..4")
)
