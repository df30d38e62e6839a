package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrzor/procshim/internal/host"
	"github.com/mrzor/procshim/internal/host/hosttest"
	"github.com/mrzor/procshim/internal/procmeta"
)

func newArgv(t *testing.T) (*Argv, *procmeta.State, *hosttest.Fake) {
	t.Helper()
	fake := hosttest.New()
	state := procmeta.NewState(fake, nil)
	return NewArgv(state), state, fake
}

func TestArgv_DoesNotRealizeOnConstruction(t *testing.T) {
	_, state, fake := newArgv(t)

	assert.False(t, state.Realized(procmeta.FieldArgv))
	assert.Zero(t, fake.CallCount("Executable"))
}

func TestArgv_MatchesState(t *testing.T) {
	v, state, _ := newArgv(t)

	args, err := state.Args()
	require.NoError(t, err)

	n, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, len(args), n)

	for i := range args {
		got, ok, err := v.Get(i)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, args[i], got)
	}
}

func TestArgv_OutOfRange(t *testing.T) {
	v, _, _ := newArgv(t)

	for _, i := range []int{-1, 3, 100} {
		got, ok, err := v.Get(i)
		require.NoError(t, err)
		assert.False(t, ok, "index %d", i)
		assert.Empty(t, got)

		has, err := v.Has(i)
		require.NoError(t, err)
		assert.False(t, has, "index %d", i)

		_, ok, err = v.Describe(i)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestArgv_KeysAndHas(t *testing.T) {
	v, _, _ := newArgv(t)

	keys, err := v.Keys()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, keys)

	for _, k := range keys {
		has, err := v.Has(k)
		require.NoError(t, err)
		assert.True(t, has, "Has should succeed for index %d", k)
	}
}

func TestArgv_RangeIsCompleteAndRestartable(t *testing.T) {
	v, state, _ := newArgv(t)
	args, err := state.Args()
	require.NoError(t, err)

	for pass := 0; pass < 2; pass++ {
		var got []string
		require.NoError(t, v.Range(func(i int, arg string) bool {
			assert.Equal(t, len(got), i)
			got = append(got, arg)
			return true
		}))
		assert.Equal(t, args, got, "pass %d", pass)
	}
}

func TestArgv_RangeStops(t *testing.T) {
	v, _, _ := newArgv(t)

	calls := 0
	require.NoError(t, v.Range(func(int, string) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)
}

func TestArgv_SetWritesBacking(t *testing.T) {
	v, state, _ := newArgv(t)

	require.NoError(t, v.Set(1, "test"))

	args, err := state.Args()
	require.NoError(t, err)
	assert.Equal(t, "test", args[1])

	err = v.Set(3, "past-end")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestArgv_Describe(t *testing.T) {
	v, _, _ := newArgv(t)

	d, ok, err := v.Describe(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Descriptor{Value: "/usr/local/bin/procshim", Writable: true, Enumerable: true, Configurable: true}, d)
}

func TestArgv_ValuesIsCopy(t *testing.T) {
	v, _, _ := newArgv(t)

	values, err := v.Values()
	require.NoError(t, err)
	values[0] = "changed"

	got, _, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/procshim", got)
}

func TestArgv_PermissionErrorPropagates(t *testing.T) {
	v, _, fake := newArgv(t)
	fake.Gate = host.DenyAll(host.PermRead)

	_, _, err := v.Get(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, host.ErrPermissionDenied))

	_, err = v.Keys()
	assert.True(t, errors.Is(err, host.ErrPermissionDenied))
	assert.True(t, errors.Is(v.Range(func(int, string) bool { return true }), host.ErrPermissionDenied))
}
