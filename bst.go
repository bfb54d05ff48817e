package bstmap

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	childLeft childSide = iota
	childRight
	childNone
)

var (
	ErrKeyNotFound     = errors.New("key not found in the map")
	ErrNoMoreEntries   = errors.New("There are no more entries in the tree")
	ErrEndPosition     = errors.New("position is past the last entry")
	ErrNoPredecessor   = errors.New("position has no predecessor")
	ErrErasedPosition  = errors.New("position references an erased node")
	ErrForeignPosition = errors.New("position belongs to another tree")
	ErrZeroPosition    = errors.New("position was never obtained from a tree")
)

type (
	childSide int

	// owner identifies the tree a position was taken from. It moves with
	// the node hierarchy on Move and Swap.
	owner[K, V any] struct {
		tree *Tree[K, V]
	}

	node[K, V any] struct {
		entry  Entry[K, V]
		left   *node[K, V]
		right  *node[K, V]
		parent *node[K, V] // not owning
		erased bool
	}

	// Tree is an unbalanced binary search tree of entries ordered by key.
	// It is not safe for concurrent use.
	Tree[K, V any] struct {
		size  int
		root  *node[K, V]
		cmp   Comparator[K]
		owner *owner[K, V]
	}

	// Position references one node of a Tree, or the end sentinel when
	// node is nil.
	Position[K, V any] struct {
		owner *owner[K, V]
		node  *node[K, V]
	}

	// PositionError is the panic value raised when a position is used
	// against its contract.
	PositionError struct {
		Op  string
		Err error
	}

	Cursor[K, V any] struct {
		tree *Tree[K, V]
		next Position[K, V]
	}
)

func (e *PositionError) Error() string {
	return fmt.Sprintf("bstmap: %s: %v", e.Op, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func positionPanic(op string, err error) {
	panic(&PositionError{Op: op, Err: err})
}

func (s childSide) String() string {
	return []string{"left", "right", "none"}[s]
}
