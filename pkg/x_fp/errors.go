// file:fpgrowth/pkg/x_fp/errors.go
package x_fp

import "errors"

// ----------------------------------------------------
// Invariant violations
// ----------------------------------------------------

var (
	ErrOwnership      = errors.New("node belongs to another tree")
	ErrDuplicateChild = errors.New("child with item already exists")
	ErrNotAChild      = errors.New("node is not a child of this node")
	ErrRootOperation  = errors.New("operation not allowed on root node")
	ErrAttached       = errors.New("node already has a parent")
	ErrDetachedParent = errors.New("parent is not reachable from the root")
)
