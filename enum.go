package checkpoint

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// The "enum" validation rule in the bind package accepts any field whose type implements Enumerable
// and whose current value passes Valid.
type Enumerable interface {
	String() string
	Valid() error
}
