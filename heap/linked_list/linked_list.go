package linked_list

import (
	"errors"
	"fmt"
	"iter"

	"github.com/goose-lang/std"
)

// ErrAnchorNotFound is returned by the insert operations when no element
// equals the anchor. The list is unchanged.
var ErrAnchorNotFound = errors.New("linked_list: anchor not found")

type node[T comparable] struct {
	elem T
	next *node[T]
}

// List is a non-empty singly-linked list. Each node is owned by exactly one
// link: either the list's root or its predecessor's next.
type List[T comparable] struct {
	root *node[T]
}

func New[T comparable](elem T) *List[T] {
	return &List[T]{root: &node[T]{elem: elem}}
}

func (l *List[T]) Append(elem T) {
	link := &l.root
	for *link != nil {
		link = &(*link).next
	}
	splice(link, elem)
	std.Assert((*link).next == nil)
}

// find returns the link that owns the first node holding elem, or nil if
// there is no such node.
func (l *List[T]) find(elem T) **node[T] {
	link := &l.root
	for *link != nil {
		if (*link).elem == elem {
			return link
		}
		link = &(*link).next
	}
	return nil
}

// splice attaches a fresh node holding elem at link, taking over whatever
// link owned before.
func splice[T comparable](link **node[T], elem T) {
	n := &node[T]{elem: elem, next: *link}
	*link = n
	std.Assert(n.next != n)
}

// InsertAfter places elem immediately after the first occurrence of anchor.
func (l *List[T]) InsertAfter(anchor T, elem T) error {
	link := l.find(anchor)
	if link == nil {
		return ErrAnchorNotFound
	}
	splice(&(*link).next, elem)
	return nil
}

// InsertBefore places elem immediately before the first occurrence of
// anchor. The new node takes over the anchor's owning link, so inserting
// before the first element changes the root.
func (l *List[T]) InsertBefore(anchor T, elem T) error {
	link := l.find(anchor)
	if link == nil {
		return ErrAnchorNotFound
	}
	splice(link, elem)
	return nil
}

func (l *List[T]) Contains(elem T) bool {
	return l.find(elem) != nil
}

func (l *List[T]) Len() uint64 {
	var n uint64 = 0
	for cur := l.root; cur != nil; cur = cur.next {
		n = std.SumAssumeNoOverflow(n, 1)
	}
	return n
}

// Iterator is a read-only cursor over a List. It does not own any nodes; a
// nil position means the cursor is exhausted.
//
// Each call to Next follows the link as it exists at that moment. Insertions
// never detach a node, so a cursor that outlives a mutation still walks a
// well-formed chain: it sees nodes inserted after its position and misses
// nodes inserted before it.
type Iterator[T comparable] struct {
	pos *node[T]
}

func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{pos: l.root}
}

// Next returns the element under the cursor and advances. Once the tail has
// been returned it reports false forever.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos == nil {
		var zero T
		return zero, false
	}
	elem := it.pos.elem
	it.pos = it.pos.next
	return elem, true
}

// All returns an iterator over the elements from root to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			elem, ok := it.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	var elems []T
	for elem := range l.All() {
		elems = append(elems, elem)
	}
	return elems
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
