package query

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mrzor/procshim/internal/procmeta"
)

// Process is the part of the process object an expression can observe.
type Process interface {
	Metadata() (*procmeta.ProcessMetadata, error)
	Platform() string
	Arch() string
	Version() string
	Versions() map[string]string
	Pid() int
}

// Evaluator holds a compiled expression.
type Evaluator struct {
	program *vm.Program
	source  string
}

// typeEnv declares variable types for compile-time checking.
var typeEnv = map[string]interface{}{
	"argv":     []string{},
	"env":      map[string]string{},
	"cmdline":  "",
	"platform": "",
	"arch":     "",
	"version":  "",
	"versions": map[string]string{},
	"pid":      0,
}

// Compile type-checks and compiles source.
func Compile(source string) (*Evaluator, error) {
	program, err := expr.Compile(source, expr.Env(typeEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", source, err)
	}
	return &Evaluator{program: program, source: source}, nil
}

// Source returns the expression text.
func (e *Evaluator) Source() string {
	return e.source
}

// Evaluate runs the expression against p. Realizing argv or env may fail with
// a host error, which is returned unchanged.
func (e *Evaluator) Evaluate(p Process) (any, error) {
	md, err := p.Metadata()
	if err != nil {
		return nil, err
	}

	env := map[string]interface{}{
		"argv":     md.Args,
		"env":      md.Environ,
		"cmdline":  md.CmdlineFull,
		"platform": p.Platform(),
		"arch":     p.Arch(),
		"version":  p.Version(),
		"versions": p.Versions(),
		"pid":      p.Pid(),
	}

	output, err := expr.Run(e.program, env)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate expression %q: %w", e.source, err)
	}
	return output, nil
}

// Pair is one flattened result line.
type Pair struct {
	Name  string
	Value string
}

// Flatten turns output into name/value pairs. Maps expand into one pair per
// key named name.<key>, sorted by key; anything else becomes a single pair.
func Flatten(name string, output any) []Pair {
	outputValue := reflect.ValueOf(output)
	if outputValue.Kind() != reflect.Map {
		return []Pair{{Name: name, Value: fmt.Sprint(output)}}
	}

	pairs := make([]Pair, 0, outputValue.Len())
	for _, key := range outputValue.MapKeys() {
		keyStr := fmt.Sprintf("%v", key.Interface())
		pairs = append(pairs, Pair{
			Name:  name + "." + sanitizeName(keyStr),
			Value: fmt.Sprintf("%v", outputValue.MapIndex(key).Interface()),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs
}

// sanitizeName replaces non-alphanumeric characters with underscores.
func sanitizeName(name string) string {
	result := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			result[i] = c
		} else {
			result[i] = '_'
		}
	}
	return string(result)
}
