package game

import "fmt"

// StateError reports an operation attempted in an invalid machine state:
// moving on a terminal game, loading outside the stack bounds, or a
// game-identifier mismatch at construction.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

// Statef builds a StateError.
func Statef(format string, args ...any) *StateError {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError is the expected rejection of untrusted move input. It
// carries the full verdict so callers can surface the reason and
// completeness to the player.
type ValidationError struct {
	Verdict Verdict
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid move: %s", e.Verdict.Message)
}

// InvariantViolation marks internal states that must be unreachable under
// correct game logic, such as a tie in a draw-free game. It is passed to
// panic and never returned.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Msg)
}

// Invariant panics with an InvariantViolation.
func Invariant(format string, args ...any) {
	panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}
