package table

// Defaulter is implemented by element types whose canonical default is not
// their Go zero value. Default must not depend on the receiver's contents;
// NewDefault calls it on a zero T.
type Defaulter[T any] interface {
	Default() T
}
