package types

import "fmt"

// InvalidTreeError is returned when a token sequence does not describe a
// single-rooted tree over its tokens.
type InvalidTreeError struct {
	Token  int
	Reason string
}

func (e *InvalidTreeError) Error() string {
	return fmt.Sprintf("invalid dependency tree at token %d: %s", e.Token, e.Reason)
}

// NonProjectiveGraphError is returned when a projective-only operation is
// requested for a tree with crossing arcs.
type NonProjectiveGraphError struct {
	Head, Modifier int
}

func (e *NonProjectiveGraphError) Error() string {
	return fmt.Sprintf("non-projective arc (%d,%d)", e.Head, e.Modifier)
}

// MultiWordTokenError marks a multi-word token annotation (e.g. "3-4") that is
// not itself a node of the tree.
type MultiWordTokenError struct {
	ID string
}

func (e *MultiWordTokenError) Error() string {
	return fmt.Sprintf("multi-word token %s is not part of the tree", e.ID)
}

// EmptyTokenError marks an empty node annotation (e.g. "3.1").
type EmptyTokenError struct {
	ID string
}

func (e *EmptyTokenError) Error() string {
	return fmt.Sprintf("empty token %s is not part of the tree", e.ID)
}
