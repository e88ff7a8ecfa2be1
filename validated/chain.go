package validated

import "iter"

// Chain is an ordered sequence with constant-time concatenation.
// Values are built with ChainOf; the zero value is empty and only useful as
// the identity for Combine.
type Chain[T any] struct {
	root *chainNode[T]
	size int
}

// chainNode is a leaf when left and right are both nil.
type chainNode[T any] struct {
	value       T
	left, right *chainNode[T]
}

// ChainOf builds a chain from head followed by tail.
func ChainOf[T any](head T, tail ...T) Chain[T] {
	c := Chain[T]{root: &chainNode[T]{value: head}, size: 1}
	for _, v := range tail {
		c = c.Combine(Chain[T]{root: &chainNode[T]{value: v}, size: 1})
	}
	return c
}

// Len returns the number of elements.
func (c Chain[T]) Len() int {
	return c.size
}

// Combine returns c followed by other without copying either.
func (c Chain[T]) Combine(other Chain[T]) Chain[T] {
	switch {
	case c.root == nil:
		return other
	case other.root == nil:
		return c
	}
	return Chain[T]{
		root: &chainNode[T]{left: c.root, right: other.root},
		size: c.size + other.size,
	}
}

// Head returns the first element and false for an empty chain.
func (c Chain[T]) Head() (T, bool) {
	for v := range c.All() {
		return v, true
	}
	var zero T
	return zero, false
}

// All iterates the elements in order. The walk uses an explicit stack, so
// long left-leaning chains built by repeated Combine do not recurse deeply.
func (c Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.root == nil {
			return
		}
		stack := []*chainNode[T]{c.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.left == nil && n.right == nil {
				if !yield(n.value) {
					return
				}
				continue
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Slice returns the elements as a new slice.
func (c Chain[T]) Slice() []T {
	out := make([]T, 0, c.size)
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}

// NonEmpty converts a non-empty chain to a NonEmpty list.
func (c Chain[T]) NonEmpty() (NonEmpty[T], bool) {
	s := c.Slice()
	if len(s) == 0 {
		return NonEmpty[T]{}, false
	}
	return NonEmpty[T]{head: s[0], tail: s[1:]}, true
}
