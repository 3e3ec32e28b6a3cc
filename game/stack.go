package game

// Stack is the append-only snapshot history of one game. It grows by one
// entry per completed move and never shrinks during normal play: loading
// an older index rehydrates the current view but keeps every later
// snapshot as an audit trail.
type Stack[S any] []S

// Len returns the number of snapshots.
func (s Stack[S]) Len() int { return len(s) }

// Push appends a snapshot.
func (s *Stack[S]) Push(snap S) { *s = append(*s, snap) }

// At returns the snapshot at idx. Negative indices count from the end, so
// At(-1) is the most recent ply.
func (s Stack[S]) At(idx int) (S, error) {
	i := idx
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		var zero S
		return zero, Statef("stack index %d out of bounds (length %d)", idx, len(s))
	}
	return s[i], nil
}

// Peek returns the most recent snapshot. The stack is never empty after
// construction.
func (s Stack[S]) Peek() S {
	if len(s) == 0 {
		Invariant("snapshot stack is empty")
	}
	return s[len(s)-1]
}
