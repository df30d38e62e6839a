package view

import (
	"fmt"

	"github.com/mrzor/procshim/internal/procmeta"
)

// Argv is a view over the realized argument list.
type Argv struct {
	state *procmeta.State
}

// NewArgv returns a view over state's argv. It does not realize anything.
func NewArgv(state *procmeta.State) *Argv {
	return &Argv{state: state}
}

// Get returns the argument at i. ok is false when i is out of range.
func (v *Argv) Get(i int) (arg string, ok bool, err error) {
	err = v.state.WithArgs(func(args []string) error {
		if i >= 0 && i < len(args) {
			arg, ok = args[i], true
		}
		return nil
	})
	return arg, ok, err
}

// Set replaces the argument at i. The length of argv never changes.
func (v *Argv) Set(i int, value string) error {
	return v.state.WithArgs(func(args []string) error {
		if i < 0 || i >= len(args) {
			return fmt.Errorf("argv[%d] of %d: %w", i, len(args), ErrIndexOutOfRange)
		}
		args[i] = value
		return nil
	})
}

// Has reports whether i is a valid index.
func (v *Argv) Has(i int) (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	return i >= 0 && i < n, nil
}

func (v *Argv) Len() (int, error) {
	var n int
	err := v.state.WithArgs(func(args []string) error {
		n = len(args)
		return nil
	})
	return n, err
}

// Keys returns the valid indices in order.
func (v *Argv) Keys() ([]int, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys, nil
}

func (v *Argv) Describe(i int) (Descriptor, bool, error) {
	arg, ok, err := v.Get(i)
	if err != nil || !ok {
		return Descriptor{}, false, err
	}
	return describe(arg), true, nil
}

// Values returns a copy of the arguments.
func (v *Argv) Values() ([]string, error) {
	var out []string
	err := v.state.WithArgs(func(args []string) error {
		out = append([]string{}, args...)
		return nil
	})
	return out, err
}

// Range calls fn for each argument in order until fn returns false.
// Every call starts a fresh iteration; fn may call back into v.
func (v *Argv) Range(fn func(i int, arg string) bool) error {
	args, err := v.Values()
	if err != nil {
		return err
	}
	for i, arg := range args {
		if !fn(i, arg) {
			return nil
		}
	}
	return nil
}
