// Package cursor provides a forward-only reader over an owned slice with a
// single mark/rewind position.
//
// Next returns copies of the elements, so a caller can keep a value returned by
// Next while it continues to read. The transformer and generator use a Cursor
// for their one-pass traversals; the parser keeps its own position instead.
package cursor

// Cursor reads elements of type T in order. The zero value is an empty cursor.
type Cursor[T any] struct {
	items []T
	pos   int
	mark  int
}

// New creates a Cursor positioned before the first element of items.
func New[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Next advances by one element and returns a copy of it. ok is false once the
// position is at or past the end; Next never panics on exhaustion.
func (c *Cursor[T]) Next() (item T, ok bool) {
	if c.pos >= len(c.items) {
		return item, false
	}
	item = c.items[c.pos]
	c.pos++
	return item, true
}

// Mark records the current position as the rewind point, replacing any
// previous mark.
func (c *Cursor[T]) Mark() {
	c.mark = c.pos
}

// Rewind moves back to the last mark, or to the start if Mark was never called.
func (c *Cursor[T]) Rewind() {
	c.pos = c.mark
}

// Pos returns the number of elements consumed so far.
func (c *Cursor[T]) Pos() int {
	return c.pos
}

// Len returns the number of elements in the underlying slice.
func (c *Cursor[T]) Len() int {
	return len(c.items)
}
