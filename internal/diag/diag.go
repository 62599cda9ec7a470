package diag

import "fmt"

// InvariantError reports a broken internal invariant: a bug in an earlier
// compiler pass, never a problem with the program being compiled. It is kept
// separate from user-facing diagnostics so callers can tell the two apart.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Message
}

// Violationf aborts immediately with an InvariantError. There is no recovery
// path: the caller was handed state that an earlier pass should have rejected.
func Violationf(format string, args ...interface{}) {
	panic(&InvariantError{Message: fmt.Sprintf(format, args...)})
}
