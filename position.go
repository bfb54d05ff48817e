package bstmap

// deref returns the node p references, panicking on the end sentinel, an
// erased node or a zero Position.
func (p Position[K, V]) deref(op string) *node[K, V] {
	switch {
	case p.owner == nil:
		positionPanic(op, ErrZeroPosition)
	case p.node == nil:
		positionPanic(op, ErrEndPosition)
	case p.node.erased:
		positionPanic(op, ErrErasedPosition)
	}
	return p.node
}

func (p Position[K, V]) IsEnd() bool {
	return p.node == nil
}

// Equal reports whether p and o reference the same node. Both must come
// from the same tree.
func (p Position[K, V]) Equal(o Position[K, V]) bool {
	if p.owner != o.owner {
		positionPanic("compare", ErrForeignPosition)
	}
	return p.node == o.node
}

func (p Position[K, V]) Entry() Entry[K, V] {
	return p.deref("entry").entry
}

func (p Position[K, V]) Key() K {
	return p.deref("key").entry.Key
}

func (p Position[K, V]) Value() V {
	return p.deref("value").entry.Value
}

// ValuePtr gives access to the stored value in place. The pointer is valid
// until the node is erased.
func (p Position[K, V]) ValuePtr() *V {
	return &p.deref("value").entry.Value
}

func (p Position[K, V]) SetValue(v V) {
	p.deref("set value").entry.Value = v
}

// Next returns the in-order successor. The successor of the maximum is End.
func (p Position[K, V]) Next() Position[K, V] {
	n := p.deref("next")
	return Position[K, V]{owner: p.owner, node: n.successor()}
}

// Prev returns the in-order predecessor. End steps back to the maximum;
// stepping back from the minimum panics.
func (p Position[K, V]) Prev() Position[K, V] {
	if p.owner != nil && p.node == nil {
		root := p.owner.tree.root
		if root == nil {
			positionPanic("prev", ErrNoPredecessor)
		}
		return Position[K, V]{owner: p.owner, node: root.maximum()}
	}

	pred := p.deref("prev").predecessor()
	if pred == nil {
		positionPanic("prev", ErrNoPredecessor)
	}
	return Position[K, V]{owner: p.owner, node: pred}
}
