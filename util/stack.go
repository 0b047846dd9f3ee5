package util

import "github.com/samber/mo"

// Stack is a LIFO of values. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item. It is absent when the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}

	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return mo.Some(top)
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
