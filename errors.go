package table

import "fmt"

// IndexOutOfBoundsError is the panic value raised when a slot index falls
// outside [0, Len). It signals a programming error in the caller, so it is
// never returned as a regular error.
type IndexOutOfBoundsError struct {
	Index int // the offending index
	Len   int // the table's capacity
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("table: index %d out of range [0:%d)", e.Index, e.Len)
}

// check panics unless 0 <= i < len(t.slots).
func (t *Table[T]) check(i int) {
	if uint(i) >= uint(len(t.slots)) {
		panic(IndexOutOfBoundsError{Index: i, Len: len(t.slots)})
	}
}
