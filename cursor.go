package table

// Cursor is a reusable, allocation-free iterator over the slots of a Table.
// It walks the slots in index order and hands out pointers, so it can be
// used for in-place updates in hot loops without the closure overhead of
// AllMut.
//
// A Cursor obeys the same rule as GetMut: while it is in use, nothing else
// may access the table.
type Cursor[T any] struct {
	t   *Table[T]
	cur *T
	idx int // -1 before the first call to Next
}

// NewCursor creates a Cursor positioned before the first slot.
//
// Returns:
//   - A pointer to the newly created Cursor.
func (t *Table[T]) NewCursor() *Cursor[T] {
	c := &Cursor[T]{t: t}
	c.Reset()
	return c
}

// Reset rewinds the cursor to the beginning so the table can be walked
// again.
func (c *Cursor[T]) Reset() {
	c.idx = -1
	c.cur = nil
}

// Next advances the cursor to the next slot. It returns true if a slot is
// available, and false once every slot has been visited. This method must
// be called before Get or Index.
//
// Example:
//
//	c := tbl.NewCursor()
//	for c.Next() {
//		p := c.Get()
//		p.X += 1
//	}
func (c *Cursor[T]) Next() bool {
	if c.idx+1 >= len(c.t.slots) {
		c.idx = len(c.t.slots)
		c.cur = nil
		return false
	}
	c.idx++
	c.cur = &c.t.slots[c.idx]
	return true
}

// Index returns the index of the current slot.
func (c *Cursor[T]) Index() int {
	return c.idx
}

// Get returns a pointer to the current slot. It returns nil if Next has not
// been called or the iteration is complete.
func (c *Cursor[T]) Get() *T {
	return c.cur
}
