package bstmap

import "iter"

func (t *Tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *Tree[K, V]) Empty() bool {
	return t.Size() == 0
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func (t *Tree[K, V]) position(n *node[K, V]) Position[K, V] {
	return Position[K, V]{owner: t.owner, node: n}
}

// Insert adds e to the tree. With keepUnique set, an entry whose key is
// already present is left untouched and its position is returned with
// false. Otherwise equal keys descend to the right, after existing ones.
func (t *Tree[K, V]) Insert(e Entry[K, V], keepUnique bool) (Position[K, V], bool) {
	var parent *node[K, V]
	side := childNone

	for cur := t.root; cur != nil; {
		c := t.cmp(e.Key, cur.entry.Key)
		if c == 0 && keepUnique {
			return t.position(cur), false
		}
		parent = cur
		if c < 0 {
			side, cur = childLeft, cur.left
		} else {
			side, cur = childRight, cur.right
		}
	}

	n := &node[K, V]{entry: e, parent: parent}
	switch side {
	case childNone:
		t.root = n
	case childLeft:
		parent.left = n
	case childRight:
		parent.right = n
	}
	t.size++

	return t.position(n), true
}

// Find returns the position of key, or End if it is absent.
func (t *Tree[K, V]) Find(key K) Position[K, V] {
	return t.position(t.lookup(key))
}

func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.entry.Key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Erase removes the node at p and returns the position that followed it.
//
// A node with two children takes over its in-order successor's entry and the
// successor node is unlinked instead, so the returned position is p itself
// and any position held on the successor becomes invalid.
func (t *Tree[K, V]) Erase(p Position[K, V]) Position[K, V] {
	t.checkOwner("erase", p)
	n := p.deref("erase")

	if n.hasTwoChildren() {
		succ := n.right.minimum()
		n.entry = succ.entry
		t.unlink(succ)
		return t.position(n)
	}

	next := n.successor()
	t.unlink(n)
	return t.position(next)
}

// EraseRange removes every node in [first, last) and returns last. When the
// node behind last is the one unlinked by a two-child erase, its entry has
// moved and last follows it.
func (t *Tree[K, V]) EraseRange(first, last Position[K, V]) Position[K, V] {
	t.checkOwner("erase range", last)
	for !first.Equal(last) {
		next := t.Erase(first)
		if last.node != nil && last.node.erased {
			last = next
		}
		first = next
	}
	return last
}

// unlink removes a node with at most one child, splicing the child into its
// slot.
func (t *Tree[K, V]) unlink(n *node[K, V]) {
	child := n.onlyChild()
	if child != nil {
		child.parent = n.parent
	}

	switch n.side() {
	case childNone:
		t.root = child
	case childLeft:
		n.parent.left = child
	case childRight:
		n.parent.right = child
	}

	n.parent, n.left, n.right = nil, nil, nil
	n.erased = true
	t.size--
}

func (t *Tree[K, V]) checkOwner(op string, p Position[K, V]) {
	switch {
	case p.owner == nil:
		positionPanic(op, ErrZeroPosition)
	case p.owner != t.owner:
		positionPanic(op, ErrForeignPosition)
	}
}

// Begin returns the position of the smallest key, or End if empty.
func (t *Tree[K, V]) Begin() Position[K, V] {
	if t.root == nil {
		return t.End()
	}
	return t.position(t.root.minimum())
}

func (t *Tree[K, V]) End() Position[K, V] {
	return t.position(nil)
}

// Clear releases every node. Positions into the tree become invalid.
func (t *Tree[K, V]) Clear() {
	releaseNodes(t.root)
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy with the same shape.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := NewTreeFunc[K, V](t.cmp)
	c.root = cloneNodes(t.root)
	c.size = t.size
	return c
}

// Assign replaces the contents of t with a deep copy of src.
func (t *Tree[K, V]) Assign(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.Clear()
	t.cmp = src.cmp
	t.root = cloneNodes(src.root)
	t.size = src.size
}

// Move hands the node hierarchy to a new tree and leaves t empty. Positions
// taken from t before the move refer to the returned tree.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	dst := &Tree[K, V]{
		size:  t.size,
		root:  t.root,
		cmp:   t.cmp,
		owner: t.owner,
	}
	dst.owner.tree = dst

	t.root = nil
	t.size = 0
	t.owner = &owner[K, V]{tree: t}
	return dst
}

// Swap exchanges the contents of t and other.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	*t, *other = *other, *t
	t.owner.tree = t
	other.owner.tree = other
}

// Cursor returns a forward cursor starting at the smallest key.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{
		tree: t,
		next: t.Begin(),
	}
}

func (c *Cursor[K, V]) HasNext() bool {
	return c != nil && c.next.node != nil
}

func (c *Cursor[K, V]) Next() (Entry[K, V], error) {
	if !c.HasNext() {
		return Entry[K, V]{}, ErrNoMoreEntries
	}
	cur := c.next.Entry()
	c.next = c.next.Next()
	return cur, nil
}

// All yields entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		for n := t.root.minimum(); n != nil; n = n.successor() {
			if !yield(n.entry.Key, n.entry.Value) {
				return
			}
		}
	}
}

// Backward yields entries in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		for n := t.root.maximum(); n != nil; n = n.predecessor() {
			if !yield(n.entry.Key, n.entry.Value) {
				return
			}
		}
	}
}
