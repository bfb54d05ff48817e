package bstmap

// find the leftmost node under n
func (n *node[K, V]) minimum() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the rightmost node under n
func (n *node[K, V]) maximum() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order next node, or nil after the maximum.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.minimum()
	}
	// climb until we leave a left subtree
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n {
			return p
		}
	}
	return nil
}

// predecessor returns the in-order previous node, or nil before the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.maximum()
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right == n {
			return p
		}
	}
	return nil
}

func (n *node[K, V]) side() childSide {
	switch {
	case n.parent == nil:
		return childNone
	case n.parent.left == n:
		return childLeft
	default:
		return childRight
	}
}

func (n *node[K, V]) hasTwoChildren() bool {
	return n.left != nil && n.right != nil
}

// onlyChild is meaningful for nodes with at most one child.
func (n *node[K, V]) onlyChild() *node[K, V] {
	if n.left != nil {
		return n.left
	}
	return n.right
}

// height counts the nodes on the longest root-to-leaf path, level by level
// so that degenerate trees do not blow the stack.
func height[K, V any](root *node[K, V]) int {
	if root == nil {
		return 0
	}
	levels := 0
	level := []*node[K, V]{root}
	for len(level) > 0 {
		levels++
		next := make([]*node[K, V], 0, len(level)*2)
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return levels
}

// cloneNodes deep copies the hierarchy under src, walking source and copy in
// lock step through parent links.
func cloneNodes[K, V any](src *node[K, V]) *node[K, V] {
	if src == nil {
		return nil
	}
	root := &node[K, V]{entry: src.entry}
	s, d := src, root
	for {
		switch {
		case s.left != nil && d.left == nil:
			d.left = &node[K, V]{entry: s.left.entry, parent: d}
			s, d = s.left, d.left
		case s.right != nil && d.right == nil:
			d.right = &node[K, V]{entry: s.right.entry, parent: d}
			s, d = s.right, d.right
		default:
			if s == src {
				return root
			}
			s, d = s.parent, d.parent
		}
	}
}

// releaseNodes detaches every node under root bottom-up and marks it erased,
// returning how many nodes were released.
func releaseNodes[K, V any](root *node[K, V]) int {
	released := 0
	n := root
	for n != nil {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			p := n.parent
			if p != nil {
				if p.left == n {
					p.left = nil
				} else {
					p.right = nil
				}
			}
			n.parent = nil
			n.erased = true
			released++
			if n == root {
				return released
			}
			n = p
		}
	}
	return released
}
