// Package view provides delegating views over the canonical process state.
//
// A view owns no data. Every call realizes the backing field if needed and
// then reads or writes the procmeta.State directly, so a view always agrees
// with the facade accessors and with any other view over the same state.
//
// Argv views the argument list (length is fixed, slots are writable).
// Env views the environment snapshot and adds Delete. Env writes can also be
// forwarded to the host's live environment; see WithWriteThrough.
package view
