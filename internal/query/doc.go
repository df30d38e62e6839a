// Package query evaluates expr-lang expressions against a process.
//
// Expressions see these variables:
//   - argv: []string, executable path followed by arguments
//   - env: map[string]string, the environment snapshot
//   - cmdline: string, argv joined with spaces
//   - platform, arch, version: string
//   - versions: map[string]string
//   - pid: int
//
// Flatten expands map results into dotted name/value pairs.
package query
