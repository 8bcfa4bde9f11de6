package format

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantError reports a violated rendering precondition. It always
// indicates a defect in the tree handed to the renderer.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Msg
}

// UnimplementedError is raised by tree builders for constructs they cannot
// represent. The renderer never creates one; it only passes it through.
type UnimplementedError struct {
	Construct string
	Loc       Location
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented: %s at %s", e.Construct, e.Loc)
}

// NewUnimplementedError creates an UnimplementedError with a stack trace.
func NewUnimplementedError(construct string, loc Location) error {
	return errors.WithStack(&UnimplementedError{Construct: construct, Loc: loc})
}

func invariant(format string, args ...any) error {
	return errors.WithStack(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}

var errDepth = &InvariantError{Msg: "depth must be > 0"}

func depthError() error {
	return errors.WithStack(errDepth)
}
