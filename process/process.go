package process

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mrzor/procshim/internal/host"
	"github.com/mrzor/procshim/internal/procmeta"
	"github.com/mrzor/procshim/internal/view"
)

var (
	// ErrNotImplemented is returned by stubs kept for API compatibility.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNotFound matches errors for missing files and directories.
	ErrNotFound = fs.ErrNotExist
	// ErrPermissionDenied matches host permission denials.
	ErrPermissionDenied = host.ErrPermissionDenied
)

// Views and records re-exported for callers outside this module.
type (
	ArgvView   = view.Argv
	EnvView    = view.Env
	Descriptor = view.Descriptor
	Metadata   = procmeta.ProcessMetadata
)

// NodeVersionKey is the Versions key aliasing the runtime version.
const NodeVersionKey = "node"

// Process is the aggregate process object.
type Process struct {
	host  host.Runtime
	state *procmeta.State
	argv  *ArgvView
	env   *EnvView
	log   logrus.FieldLogger

	platform func() string
	versions func() map[string]string
}

type options struct {
	log          logrus.FieldLogger
	writeThrough bool
}

// Option configures a Process.
type Option func(*options)

// WithLogger sets the logger shared by the process and its views.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// WithEnvWriteThrough controls whether EnvView writes reach the host environment.
func WithEnvWriteThrough(enabled bool) Option {
	return func(o *options) { o.writeThrough = enabled }
}

// New creates a Process over h. It does not call into h.
func New(h host.Runtime, opts ...Option) *Process {
	o := options{log: logrus.StandardLogger(), writeThrough: true}
	for _, opt := range opts {
		opt(&o)
	}

	state := procmeta.NewState(h, o.log)
	p := &Process{
		host:  h,
		state: state,
		argv:  view.NewArgv(state),
		env:   view.NewEnv(state, h, view.WithWriteThrough(o.writeThrough), view.WithLogger(o.log)),
		log:   o.log,
	}
	p.platform = sync.OnceValue(func() string {
		return platformName(h.OS())
	})
	p.versions = sync.OnceValue(func() map[string]string {
		hv := h.Versions()
		out := make(map[string]string, len(hv)+1)
		out[NodeVersionKey] = hv[host.RuntimeName]
		maps.Copy(out, hv)
		return out
	})
	return p
}

func platformName(goos string) string {
	if goos == "windows" {
		return "win32"
	}
	return goos
}

// Argv returns the executable path followed by the invocation arguments.
// The same slice is returned on every call. It is unsynchronized shared
// storage: do not use it while another goroutine writes through ArgvView.
func (p *Process) Argv() ([]string, error) {
	return p.state.Args()
}

// Env returns the cached environment snapshot. The same map is returned on
// every call. It is unsynchronized shared storage: do not read or write it
// while another goroutine uses EnvView.
func (p *Process) Env() (map[string]string, error) {
	return p.state.Environ()
}

// ArgvView returns the delegating view over Argv.
func (p *Process) ArgvView() *ArgvView {
	return p.argv
}

// EnvView returns the delegating view over Env.
func (p *Process) EnvView() *EnvView {
	return p.env
}

// Metadata returns a detached copy of argv and env.
func (p *Process) Metadata() (*Metadata, error) {
	return p.state.Metadata()
}

// Exit terminates the process with code.
func (p *Process) Exit(code int) {
	p.log.WithField("code", code).Debug("exit requested")
	p.host.Exit(code)
}

// Chdir changes the working directory. A missing directory fails with an
// error matching ErrNotFound and leaves the working directory unchanged.
func (p *Process) Chdir(dir string) error {
	return p.host.Chdir(dir)
}

func (p *Process) Cwd() (string, error) {
	return p.host.Getwd()
}

func (p *Process) Pid() int {
	return p.host.Pid()
}

// Ppid returns the parent process id.
func (p *Process) Ppid() int {
	return p.host.Ppid()
}

// Getenv reads name from the host's live environment, bypassing the snapshot.
// Variables set only in the snapshot are not visible here.
func (p *Process) Getenv(name string) (string, bool, error) {
	return p.host.LookupEnv(name)
}

func (p *Process) Arch() string {
	return p.host.Arch()
}

// Platform returns the host OS family, with "windows" reported as "win32".
func (p *Process) Platform() string {
	return p.platform()
}

// Version returns the runtime version prefixed with "v".
func (p *Process) Version() string {
	return "v" + p.versions()[host.RuntimeName]
}

// Versions returns the host version identifiers plus the "node" alias.
func (p *Process) Versions() map[string]string {
	return maps.Clone(p.versions())
}

// On would register an event listener. It always returns ErrNotImplemented
// and registers nothing.
func (p *Process) On(event string, _ func(args ...any)) error {
	p.log.WithField("event", event).Warn("process.on is not implemented")
	return fmt.Errorf("process.on(%q): %w", event, ErrNotImplemented)
}

// NextTick queues callback(args...) to run on the host microtask queue.
func (p *Process) NextTick(callback func(args ...any), args ...any) {
	p.host.QueueMicrotask(func() {
		callback(args...)
	})
}

// RunMicrotasks runs callbacks queued with NextTick.
func (p *Process) RunMicrotasks() int {
	return p.host.RunMicrotasks()
}

var surface = []string{
	"arch", "argv", "chdir", "cwd", "env", "exit",
	"nextTick", "on", "pid", "platform", "ppid", "version", "versions",
}

// Surface lists the member names of the process object in sorted order.
func Surface() []string {
	out := append([]string{}, surface...)
	sort.Strings(out)
	return out
}
