// Package bstmap implements an ordered map on top of an unbalanced binary
// search tree.
//
// No rebalancing is done: inserting keys in sorted order degrades the tree
// into a linked list and find, insert and erase become O(n). Instances are
// not safe for concurrent use.
package bstmap

import (
	"cmp"
	"iter"
)

// Comparator orders keys: negative if a < b, zero if equal, positive if a > b.
type Comparator[K any] func(a, b K) int

// Entry is the key-value pair stored in each node.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func NewTree[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewTreeFunc[K, V](cmp.Compare[K])
}

func NewTreeFunc[K, V any](cmp Comparator[K]) *Tree[K, V] {
	if cmp == nil {
		panic("bstmap: nil comparator")
	}
	t := &Tree[K, V]{cmp: cmp}
	t.owner = &owner[K, V]{tree: t}
	return t
}

// New returns a map ordered by K's natural ordering holding entries.
// Later entries with a key already present are ignored.
func New[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], entries...)
}

func NewFunc[K, V any](cmp Comparator[K], entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{bst: NewTreeFunc[K, V](cmp)}
	m.InsertList(entries...)
	return m
}

// FromSeq builds a map from a finite sequence of key-value pairs.
func FromSeq[K, V any](cmp Comparator[K], seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewFunc[K, V](cmp)
	m.InsertSeq(seq)
	return m
}
