// Package host abstracts the primitives of the hosting process.
//
// Runtime is the full capability list consumed by the process facade:
//
//   - Arguments: Args, Executable
//   - Environment: Environ, LookupEnv, Setenv, Unsetenv
//   - Identity: Pid, Ppid, Arch, OS, Versions
//   - Working directory: Chdir, Getwd
//   - Lifecycle: Exit, QueueMicrotask, RunMicrotasks
//
// OS implements Runtime on top of the os and runtime packages. An optional Gate
// is consulted once per underlying argument or environment call; denials wrap
// ErrPermissionDenied and are returned unchanged to the caller.
package host
