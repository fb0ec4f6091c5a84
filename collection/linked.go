// SPDX-License-Identifier: MIT
//
// File: linked.go
// Role: Doubly-linked Sequence over container/list.
// Notes:
//   - Elements are stored as list.Element.Value (type any) and asserted back
//     to T on read. A caller-supplied list holding foreign values panics on
//     read, exactly like any other mistyped assertion.

package collection

import (
	"container/list"
	"iter"
)

// MethodLinkedInsert prefixes errors raised by Linked.Insert.
const MethodLinkedInsert = "Linked.Insert"

// Linked is a Sequence over a *list.List. Appending is O(1); positional
// inserts walk from the nearer end.
type Linked[T any] struct {
	l *list.List
}

// NewLinked returns an empty Linked sequence.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{l: list.New()}
}

// LinkedOf wraps the caller's list without copying it. A nil l yields a
// fresh, unshared list.
func LinkedOf[T any](l *list.List) *Linked[T] {
	if l == nil {
		l = list.New()
	}

	return &Linked[T]{l: l}
}

// Len returns the number of elements. O(1).
func (s *Linked[T]) Len() int { return s.l.Len() }

// Append pushes items to the back in argument order. O(len(items)).
func (s *Linked[T]) Append(items ...T) {
	for _, item := range items {
		s.l.PushBack(item)
	}
}

// Insert places items before the element currently at index; index == Len()
// appends.
//
// Errors:
//   - ErrIndexOutOfRange if index ∉ [0, Len()]; the list is untouched.
//
// Complexity: O(min(index, Len()-index) + len(items)).
func (s *Linked[T]) Insert(index int, items ...T) error {
	n := s.l.Len()
	if err := checkIndex(MethodLinkedInsert, index, n); err != nil {
		return err
	}
	if index == n {
		s.Append(items...)
		return nil
	}

	mark := s.at(index, n)
	for _, item := range items {
		s.l.InsertBefore(item, mark)
	}

	return nil
}

// at returns the element at a valid index, walking from the nearer end.
func (s *Linked[T]) at(index, n int) *list.Element {
	if index < n/2 {
		e := s.l.Front()
		for i := 0; i < index; i++ {
			e = e.Next()
		}
		return e
	}

	e := s.l.Back()
	for i := n - 1; i > index; i-- {
		e = e.Prev()
	}

	return e
}

// All iterates the elements front to back.
func (s *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := s.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

// List returns the backing list itself (no copy).
func (s *Linked[T]) List() *list.List { return s.l }

// IsNil reports whether the receiver is a nil *Linked.
func (s *Linked[T]) IsNil() bool { return s == nil || s.l == nil }
