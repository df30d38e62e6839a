package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrzor/procshim/internal/procmeta"
)

type stubProcess struct {
	md  *procmeta.ProcessMetadata
	err error
}

func (s stubProcess) Metadata() (*procmeta.ProcessMetadata, error) { return s.md, s.err }
func (s stubProcess) Platform() string { return "win32" }
func (s stubProcess) Arch() string { return "arm64" }
func (s stubProcess) Version() string { return "v1.2.3" }
func (s stubProcess) Pid() int { return 42 }

func (s stubProcess) Versions() map[string]string {
	return map[string]string{"node": "1.2.3", "procshim": "1.2.3"}
}

func newStub() stubProcess {
	return stubProcess{md: &procmeta.ProcessMetadata{
		Environ:     map[string]string{"FOO": "bar", "BAZ": "qux"},
		Args:        []string{"/bin/procshim", "hello"},
		CmdlineFull: "/bin/procshim hello",
	}}
}

func TestEvaluate_Simple(t *testing.T) {
	tests := []struct {
		source string
		want   any
	}{
		{`env["FOO"]`, "bar"},
		{`argv[1]`, "hello"},
		{`len(argv)`, 2},
		{`cmdline`, "/bin/procshim hello"},
		{`platform == "win32" ? "windows" : platform`, "windows"},
		{`version`, "v1.2.3"},
		{`versions["node"]`, "1.2.3"},
		{`pid + 1`, 43},
		{`arch`, "arm64"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			ev, err := Compile(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.source, ev.Source())

			got, err := ev.Evaluate(newStub())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_MissingKey(t *testing.T) {
	// Accessing missing map keys in expr returns empty string, not an error
	ev, err := Compile(`env["MISSING"]`)
	require.NoError(t, err)

	got, err := ev.Evaluate(newStub())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCompile_Invalid(t *testing.T) {
	for _, source := range []string{`invalid syntax here`, `invalid_function()`, `argv + 1`} {
		_, err := Compile(source)
		assert.Error(t, err, source)
	}
}

func TestEvaluate_MetadataErrorPropagates(t *testing.T) {
	denied := errors.New("requires env access")
	ev, err := Compile(`env["FOO"]`)
	require.NoError(t, err)

	_, err = ev.Evaluate(stubProcess{err: denied})
	assert.ErrorIs(t, err, denied)
}

func TestFlatten_Scalar(t *testing.T) {
	assert.Equal(t, []Pair{{Name: "result", Value: "bar"}}, Flatten("result", "bar"))
	assert.Equal(t, []Pair{{Name: "result", Value: "3"}}, Flatten("result", 3))
	assert.Equal(t, []Pair{{Name: "result", Value: "[a b]"}}, Flatten("result", []string{"a", "b"}))
}

func TestFlatten_Map(t *testing.T) {
	got := Flatten("env", map[string]string{"FOO": "bar", "A-B": "c", "NESTED": "x"})

	assert.Equal(t, []Pair{
		{Name: "env.A_B", Value: "c"},
		{Name: "env.FOO", Value: "bar"},
		{Name: "env.NESTED", Value: "x"},
	}, got)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"with-dash", "with_dash"},
		{"with.dot", "with_dot"},
		{"with space", "with_space"},
		{"special!@#$%", "special_____"},
		{"mixed-123.test", "mixed_123_test"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeName(tt.input); got != tt.want {
				t.Errorf("sanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
