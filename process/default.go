package process

import "github.com/mrzor/procshim/internal/host"

var defaultProcess = New(host.NewOS())

// Default returns the process bound to the running Go program.
func Default() *Process {
	return defaultProcess
}

// Standalone views over the default process.
var (
	Argv = defaultProcess.ArgvView()
	Env  = defaultProcess.EnvView()
)
