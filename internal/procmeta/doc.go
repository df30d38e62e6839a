// Package procmeta holds the canonical, memoized process state.
//
// State realizes two fields from a Source on first access:
//
//   - argv: the executable path followed by the invocation arguments
//   - env: a snapshot of the environment
//
// Realization happens at most once per field. A failed realization (for
// example a denied permission) caches nothing, so a later access retries.
// After realization, Args and Environ return the same slice and map on every
// call; the env map's contents stay mutable in place.
//
// Views read and write through WithArgs and WithEnviron, which run under the
// state lock and are safe for concurrent use. The slice and map returned by
// Args and Environ are the locked storage itself, handed out without the lock;
// they must not be used concurrently with WithArgs or WithEnviron.
//
// Errors from the Source are returned unchanged.
package procmeta
