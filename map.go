package bstmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Map is an ordered dictionary with unique keys. Create one with New or
// NewFunc; the zero value has no comparator and is not usable.
type Map[K, V any] struct {
	bst *Tree[K, V]
}

// Iterator walks a Map in key order. It stays valid until the entry it
// references is erased.
type Iterator[K, V any] struct {
	it Position[K, V]
}

func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m.bst.Begin()}
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m.bst.End()}
}

func (m *Map[K, V]) Size() int {
	return m.bst.Size()
}

func (m *Map[K, V]) Empty() bool {
	return m.bst.Empty()
}

func (m *Map[K, V]) Height() int {
	return m.bst.Height()
}

// Insert adds e unless its key is present. The returned bool is false when
// the key already existed; the stored value is then left as it was.
func (m *Map[K, V]) Insert(e Entry[K, V]) (Iterator[K, V], bool) {
	pos, inserted := m.bst.Insert(e, true)
	return Iterator[K, V]{pos}, inserted
}

// InsertRange inserts the entries in [first, last) one at a time.
func (m *Map[K, V]) InsertRange(first, last Iterator[K, V]) {
	for it := first; !it.Equal(last); it = it.Next() {
		m.bst.Insert(it.Entry(), true)
	}
}

func (m *Map[K, V]) InsertList(entries ...Entry[K, V]) {
	for _, e := range entries {
		m.bst.Insert(e, true)
	}
}

func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.bst.Insert(Entry[K, V]{Key: k, Value: v}, true)
	}
}

// Find returns an iterator at key, or End if absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m.bst.Find(key)}
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.bst.lookup(key) != nil
}

// Get returns the value stored for key. It never modifies the map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.bst.lookup(key); n != nil {
		return n.entry.Value, true
	}
	var zero V
	return zero, false
}

// Index returns a pointer to the value for key. A missing key is inserted
// with the zero value first, so reading an absent key grows the map.
func (m *Map[K, V]) Index(key K) *V {
	return m.GetOrInsert(key, func() V {
		var zero V
		return zero
	})
}

// GetOrInsert returns a pointer to the value for key, inserting factory()
// when the key is missing. factory is not called for present keys.
func (m *Map[K, V]) GetOrInsert(key K, factory func() V) *V {
	if n := m.bst.lookup(key); n != nil {
		return &n.entry.Value
	}
	pos, _ := m.bst.Insert(Entry[K, V]{Key: key, Value: factory()}, true)
	return pos.ValuePtr()
}

// At returns a pointer to the value for key, or an error wrapping
// ErrKeyNotFound. The map is not modified.
func (m *Map[K, V]) At(key K) (*V, error) {
	n := m.bst.lookup(key)
	if n == nil {
		return nil, errors.WithMessagef(ErrKeyNotFound, "at %v", key)
	}
	return &n.entry.Value, nil
}

// EraseKey removes key and reports how many entries were removed, 0 or 1.
func (m *Map[K, V]) EraseKey(key K) int {
	pos := m.bst.Find(key)
	if pos.IsEnd() {
		return 0
	}
	m.bst.Erase(pos)
	return 1
}

// Erase removes the entry at it and returns the iterator to the entry that
// followed it.
func (m *Map[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	return Iterator[K, V]{m.bst.Erase(it.it)}
}

// EraseRange removes [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	return Iterator[K, V]{m.bst.EraseRange(first.it, last.it)}
}

func (m *Map[K, V]) Clear() {
	m.bst.Clear()
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{bst: m.bst.Clone()}
}

// Move returns a map owning m's entries and leaves m empty.
func (m *Map[K, V]) Move() *Map[K, V] {
	return &Map[K, V]{bst: m.bst.Move()}
}

func (m *Map[K, V]) Assign(src *Map[K, V]) {
	m.bst.Assign(src.bst)
}

// Reset replaces the contents with entries.
func (m *Map[K, V]) Reset(entries ...Entry[K, V]) {
	m.Clear()
	m.InsertList(entries...)
}

func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.bst.Swap(other.bst)
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.bst.All()
}

func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.bst.Backward()
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.bst.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Cursor() *Cursor[K, V] {
	return m.bst.Cursor()
}

// String formats the map like a Go map literal, in key order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	sep := ""
	for k, v := range m.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, k, v)
		sep = " "
	}
	b.WriteString("]")
	return b.String()
}

func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool {
	return it.it.Equal(o.it)
}

func (it Iterator[K, V]) IsEnd() bool {
	return it.it.IsEnd()
}

func (it Iterator[K, V]) Entry() Entry[K, V] {
	return it.it.Entry()
}

func (it Iterator[K, V]) Key() K {
	return it.it.Key()
}

func (it Iterator[K, V]) Value() V {
	return it.it.Value()
}

func (it Iterator[K, V]) ValuePtr() *V {
	return it.it.ValuePtr()
}

func (it Iterator[K, V]) SetValue(v V) {
	it.it.SetValue(v)
}

func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{it.it.Next()}
}

func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{it.it.Prev()}
}
