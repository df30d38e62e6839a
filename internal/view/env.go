package view

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/mrzor/procshim/internal/procmeta"
)

// EnvHost is the live environment store writes are forwarded to.
type EnvHost interface {
	Setenv(name, value string) error
	Unsetenv(name string) error
}

// Env is a view over the realized environment snapshot.
type Env struct {
	state        *procmeta.State
	host         EnvHost
	writeThrough bool
	log          logrus.FieldLogger
}

// EnvOption configures an Env view.
type EnvOption func(*Env)

// WithWriteThrough controls whether Set and Delete also update the host
// environment. It is enabled by default.
func WithWriteThrough(enabled bool) EnvOption {
	return func(v *Env) { v.writeThrough = enabled }
}

// WithLogger sets the logger for write-through diagnostics.
func WithLogger(l logrus.FieldLogger) EnvOption {
	return func(v *Env) { v.log = l }
}

// NewEnv returns a view over state's env. It does not realize anything.
// host may be nil, which disables write-through.
func NewEnv(state *procmeta.State, host EnvHost, opts ...EnvOption) *Env {
	v := &Env{
		state:        state,
		host:         host,
		writeThrough: true,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.host == nil {
		v.writeThrough = false
	}
	return v
}

// WriteThrough reports whether writes reach the host environment.
func (v *Env) WriteThrough() bool {
	return v.writeThrough
}

// Get returns the value of key. A missing key is not an error.
func (v *Env) Get(key string) (value string, ok bool, err error) {
	err = v.state.WithEnviron(func(env map[string]string) error {
		value, ok = env[key]
		return nil
	})
	return value, ok, err
}

// Set stores key in the snapshot. With write-through the host is updated
// first, and a host failure leaves the snapshot untouched.
func (v *Env) Set(key, value string) error {
	return v.state.WithEnviron(func(env map[string]string) error {
		if v.writeThrough {
			if err := v.host.Setenv(key, value); err != nil {
				return err
			}
			v.log.WithField("key", key).Debug("env write forwarded to host")
		}
		env[key] = value
		return nil
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (v *Env) Delete(key string) error {
	return v.state.WithEnviron(func(env map[string]string) error {
		if v.writeThrough {
			if err := v.host.Unsetenv(key); err != nil {
				return err
			}
			v.log.WithField("key", key).Debug("env delete forwarded to host")
		}
		delete(env, key)
		return nil
	})
}

func (v *Env) Has(key string) (bool, error) {
	_, ok, err := v.Get(key)
	return ok, err
}

func (v *Env) Len() (int, error) {
	var n int
	err := v.state.WithEnviron(func(env map[string]string) error {
		n = len(env)
		return nil
	})
	return n, err
}

// Keys returns the current keys in sorted order.
func (v *Env) Keys() ([]string, error) {
	var keys []string
	err := v.state.WithEnviron(func(env map[string]string) error {
		keys = sortedKeys(env)
		return nil
	})
	return keys, err
}

func (v *Env) Describe(key string) (Descriptor, bool, error) {
	value, ok, err := v.Get(key)
	if err != nil || !ok {
		return Descriptor{}, false, err
	}
	return describe(value), true, nil
}

// ToMap returns a copy of the environment.
func (v *Env) ToMap() (map[string]string, error) {
	var out map[string]string
	err := v.state.WithEnviron(func(env map[string]string) error {
		out = maps.Clone(env)
		return nil
	})
	return out, err
}

// Range calls fn for each variable in key order until fn returns false.
// It iterates a copy taken at call time, so fn may modify v.
func (v *Env) Range(fn func(key, value string) bool) error {
	env, err := v.ToMap()
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(env) {
		if !fn(key, env[key]) {
			return nil
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
