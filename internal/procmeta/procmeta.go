package procmeta

import "strings"

// ProcessMetadata holds structured process information for expression evaluation.
type ProcessMetadata struct {
	Environ     map[string]string // Environment snapshot
	Args        []string          // Executable path followed by arguments
	CmdlineFull string            // Full command line as single string
}

// parseCmdline copies raw and joins it into a single command line.
func parseCmdline(raw []string) ([]string, string) {
	args := append([]string{}, raw...)
	return args, strings.Join(args, " ")
}
