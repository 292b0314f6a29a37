// Package typeseterr defines the three error kinds every compiler-safe entry
// point returns: InvalidInput, StackOverflow, and AllocationFailed. These are
// the only error kinds the pipeline surfaces; callers match on them with
// errors.As rather than errors.Is, since each carries structured context.
//
// AllocationFailed is part of the taxonomy but unreachable from this port's
// plain-heap allocation strategy — it exists so a host that plugs in a
// pooled or arena-backed allocator has a slot to report into (see
// SPEC_FULL.md's AMBIENT STACK / Error handling section for the rationale).
package typeseterr

import "fmt"

// InvalidInput reports caller-visible misuse, e.g. a zero recursion budget,
// which is reported immediately without entering the pipeline. CompileSafe
// also uses it to report a panic recovered from inside a pass.
type InvalidInput struct {
	Message string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("typeset: invalid input: %s", e.Message)
}

// StackOverflow reports that a pass's recursion bound was exceeded.
type StackOverflow struct {
	Depth    int
	MaxDepth int
}

func (e *StackOverflow) Error() string {
	return fmt.Sprintf("typeset: stack overflow: depth %d exceeded maximum %d", e.Depth, e.MaxDepth)
}

// AllocationFailed reports that a pass's backing storage could not grow.
type AllocationFailed struct {
	Message string
}

func (e *AllocationFailed) Error() string {
	return fmt.Sprintf("typeset: allocation failed: %s", e.Message)
}

// InvariantViolation reports a pass-internal assertion failure: a bug in an
// earlier pass, or corruption of the input. It is not one of the three
// taxonomy kinds above and callers are not meant to match on it directly:
// a pass panics with it, Compile lets that panic propagate, and
// CompileSafe* recovers it and returns it wrapped as an InvalidInput.
type InvariantViolation struct {
	Pass    string
	Detail  string
	NodeIdx int
	TagID   uint64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("typeset: invariant violation in pass %q at node %d (tag %d): %s",
		e.Pass, e.NodeIdx, e.TagID, e.Detail)
}
