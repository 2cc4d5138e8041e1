package table

import "iter"

// All returns a sequence of index/value pairs over every slot in index
// order. Each call produces an independent sequence and iterating does not
// modify the table.
func (t *Table[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range t.slots {
			if !yield(i, t.slots[i]) {
				return
			}
		}
	}
}

// Values returns a sequence over every element in index order.
func (t *Table[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range t.slots {
			if !yield(t.slots[i]) {
				return
			}
		}
	}
}

// AllMut returns a sequence of index/pointer pairs over every slot in index
// order. Writes through the yielded pointers update the table in place.
//
// Only one mutable sequence may be live at a time, and nothing else may
// access the table while it is being iterated.
func (t *Table[T]) AllMut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range t.slots {
			if !yield(i, &t.slots[i]) {
				return
			}
		}
	}
}
