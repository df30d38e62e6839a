// Package process exposes a Node-style process object backed by a host runtime.
//
// A Process offers argv and env as memoized accessors plus thin wrappers over
// the host (Exit, Chdir, Cwd, Pid, Arch, Platform, Version, Versions,
// NextTick). Nothing is read from the host until first use.
//
// Argv and Env are standalone views over the default process. They hold no
// data and always agree with Default().Argv() and Default().Env().
//
// Environment surfaces differ in how writes travel:
//
//   - Env() returns the cached snapshot map. Writing to it never reaches the host.
//   - EnvView() reads from the same snapshot. Set and Delete update the snapshot
//     and, unless disabled with WithEnvWriteThrough(false), the host environment.
//
// The views are safe for concurrent use. The slice and map returned by Argv()
// and Env() are the views' backing storage handed out without a lock, so they
// must not be used concurrently with view operations.
//
// On is reserved for event registration and always fails with ErrNotImplemented.
package process
