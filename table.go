// Package table implements a fixed-capacity, fixed-slot container for
// data-oriented storage such as entity/component pools.
//
// Features:
// - Exactly N slots, allocated once at construction and never resized.
// - Every slot always holds a valid value; "removing" means zeroing.
// - Stable integer indices in [0, N).
// - Index-ordered iteration via iter.Seq and an allocation-free Cursor.
//
// A Table performs no locking. Any number of readers may share a Table, but
// a writer (Set, GetMut, Zero, ZeroAll, Fill, AllMut, Cursor) must be the
// only live access while it runs.
package table

// Table is a contiguous block of exactly N slots of type T.
//
// Example:
//
//	type Entity struct {
//		X, Y float32
//	}
//
//	type Data struct {
//		// Memory reserved for 512 entities.
//		Entities *table.Table[Entity]
//	}
//
//	d := Data{Entities: table.New[Entity](512)}
type Table[T any] struct {
	slots []T      // len == cap == N, never resliced
	def   func() T // nil means the zero value of T
}

// New creates a Table with n slots, each set to the zero value of T.
//
// Parameters:
//   - n: The number of slots. It is fixed for the lifetime of the table.
//
// Returns:
//   - The newly created Table.
func New[T any](n int) *Table[T] {
	return NewFunc[T](n, nil)
}

// NewDefault creates a Table with n slots whose default value is provided by
// T's Default method. The same default is used when a slot is zeroed.
func NewDefault[T Defaulter[T]](n int) *Table[T] {
	var d T
	return NewFunc(n, d.Default)
}

// NewFunc creates a Table with n slots, each initialized by calling def.
// A nil def falls back to the zero value of T. def is also called by Zero
// and ZeroAll, so it should return a fresh value on every call when T holds
// references.
func NewFunc[T any](n int, def func() T) *Table[T] {
	if n < 0 {
		panic("table: negative capacity")
	}
	t := &Table[T]{
		slots: make([]T, n),
		def:   def,
	}
	if def != nil {
		for i := range t.slots {
			t.slots[i] = def()
		}
	}
	return t
}

// Len returns the number of slots. It never changes.
func (t *Table[T]) Len() int {
	return len(t.slots)
}

// Get returns a copy of the element at index i.
// It panics with an IndexOutOfBoundsError if i is not in [0, Len()).
func (t *Table[T]) Get(i int) T {
	t.check(i)
	return t.slots[i]
}

// GetMut returns a pointer to the element at index i for in-place
// mutation. The pointer must not be used concurrently with any other access
// to the table.
// It panics with an IndexOutOfBoundsError if i is not in [0, Len()).
func (t *Table[T]) GetMut(i int) *T {
	t.check(i)
	return &t.slots[i]
}

// Set replaces the element at index i with v.
// It panics with an IndexOutOfBoundsError if i is not in [0, Len()).
func (t *Table[T]) Set(i int, v T) {
	t.check(i)
	t.slots[i] = v
}

// Zero resets the element at index i back to the default value, discarding
// whatever was stored there. This is how an entry is logically removed: the
// slot itself never goes away.
// It panics with an IndexOutOfBoundsError if i is not in [0, Len()).
func (t *Table[T]) Zero(i int) {
	t.check(i)
	t.slots[i] = t.zero()
}

// ZeroAll resets every slot to the default value.
func (t *Table[T]) ZeroAll() {
	if t.def == nil {
		clear(t.slots)
		return
	}
	for i := range t.slots {
		t.slots[i] = t.def()
	}
}

// Fill sets every slot to v.
func (t *Table[T]) Fill(v T) {
	for i := range t.slots {
		t.slots[i] = v
	}
}

// Find scans the slots in index order and returns a copy of the first
// element for which predicate returns true. The second result is false if
// no element matches.
//
// The predicate receives a pointer to avoid copying large elements; it must
// only read through it.
func (t *Table[T]) Find(predicate func(*T) bool) (T, bool) {
	if i := t.FindIndex(predicate); i >= 0 {
		return t.slots[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the lowest index whose element satisfies predicate, or
// -1 if there is none.
func (t *Table[T]) FindIndex(predicate func(*T) bool) int {
	for i := range t.slots {
		if predicate(&t.slots[i]) {
			return i
		}
	}
	return -1
}

// zero produces the default value for a slot.
func (t *Table[T]) zero() T {
	if t.def != nil {
		return t.def()
	}
	var zero T
	return zero
}
