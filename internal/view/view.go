package view

import "errors"

// ErrIndexOutOfRange is returned when writing past the end of argv.
var ErrIndexOutOfRange = errors.New("index out of range")

// Descriptor describes one entry of the backing store.
type Descriptor struct {
	Value        string
	Writable     bool
	Enumerable   bool
	Configurable bool
}

func describe(value string) Descriptor {
	return Descriptor{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// View is the operation set shared by Argv and Env.
type View[K comparable] interface {
	Get(key K) (string, bool, error)
	Set(key K, value string) error
	Has(key K) (bool, error)
	Len() (int, error)
	Keys() ([]K, error)
	Describe(key K) (Descriptor, bool, error)
	Range(fn func(key K, value string) bool) error
}

var (
	_ View[int]    = (*Argv)(nil)
	_ View[string] = (*Env)(nil)
)
