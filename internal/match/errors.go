package match

import "errors"

// Sentinel errors returned by the scoring engine and the lifecycle service.
// Controllers map these to HTTP responses; anything else is treated as a
// persistence failure.
var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrScoreNotFound     = errors.New("score record not found")
	ErrInvalidTransition = errors.New("invalid match status transition")
	ErrSetCompleted      = errors.New("set is already completed")
	ErrSetNotCurrent     = errors.New("set number is out of range or not the current set")
	ErrFinalSetReached   = errors.New("already at final set")
	ErrInvalidPlayer     = errors.New("player must be 1 or 2")
	ErrInvalidAction     = errors.New("action must be increment or decrement")
)
