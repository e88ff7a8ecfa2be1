package validated

import "iter"

// NonEmpty is an ordered list holding at least one element.
type NonEmpty[T any] struct {
	head T
	tail []T
}

// NonEmptyOf builds a list from head followed by tail.
func NonEmptyOf[T any](head T, tail ...T) NonEmpty[T] {
	return NonEmpty[T]{head: head, tail: append([]T(nil), tail...)}
}

// Head returns the first element.
func (n NonEmpty[T]) Head() T {
	return n.head
}

// Len returns the number of elements.
func (n NonEmpty[T]) Len() int {
	return 1 + len(n.tail)
}

// Combine returns n followed by other. Neither operand is modified.
func (n NonEmpty[T]) Combine(other NonEmpty[T]) NonEmpty[T] {
	tail := make([]T, 0, len(n.tail)+other.Len())
	tail = append(tail, n.tail...)
	tail = append(tail, other.head)
	tail = append(tail, other.tail...)
	return NonEmpty[T]{head: n.head, tail: tail}
}

// Slice returns the elements as a new slice.
func (n NonEmpty[T]) Slice() []T {
	out := make([]T, 0, n.Len())
	out = append(out, n.head)
	return append(out, n.tail...)
}

// All iterates the elements in order.
func (n NonEmpty[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(n.head) {
			return
		}
		for _, v := range n.tail {
			if !yield(v) {
				return
			}
		}
	}
}
