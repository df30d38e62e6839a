package host

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

// BuildVersion is the runtime version, injected at build time with
// -ldflags "-X github.com/mrzor/procshim/internal/host.BuildVersion=1.2.3".
var BuildVersion = "dev"

// OS is the Runtime of the current Go process.
type OS struct {
	gate  Gate
	log   logrus.FieldLogger
	tasks TaskQueue
}

// Option configures an OS host.
type Option func(*OS)

// WithGate installs a permission gate.
func WithGate(g Gate) Option {
	return func(h *OS) { h.gate = g }
}

// WithLogger sets the logger used for host diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *OS) { h.log = l }
}

// NewOS creates a host bound to the current process. It performs no system calls.
func NewOS(opts ...Option) *OS {
	h := &OS{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *OS) check(perm Permission, detail string) error {
	if h.gate == nil {
		return nil
	}
	if err := h.gate(perm, detail); err != nil {
		h.log.WithFields(logrus.Fields{"perm": perm, "detail": detail}).Debug("host access denied")
		return err
	}
	return nil
}

// Args returns os.Args without the program name.
func (h *OS) Args() ([]string, error) {
	if len(os.Args) < 2 {
		return []string{}, nil
	}
	return append([]string(nil), os.Args[1:]...), nil
}

// Executable resolves the running binary's path.
func (h *OS) Executable() (string, error) {
	if err := h.check(PermRead, "<exec_path>"); err != nil {
		return "", err
	}
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return path, nil
}

// Environ snapshots the environment.
func (h *OS) Environ() (map[string]string, error) {
	if err := h.check(PermEnv, ""); err != nil {
		return nil, err
	}
	return parseEnviron(os.Environ()), nil
}

func (h *OS) LookupEnv(name string) (string, bool, error) {
	if err := h.check(PermEnv, name); err != nil {
		return "", false, err
	}
	v, ok := os.LookupEnv(name)
	return v, ok, nil
}

func (h *OS) Setenv(name, value string) error {
	if err := h.check(PermEnv, name); err != nil {
		return err
	}
	return os.Setenv(name, value)
}

// Unsetenv removes name; removing an absent variable is not an error.
func (h *OS) Unsetenv(name string) error {
	if err := h.check(PermEnv, name); err != nil {
		return err
	}
	return os.Unsetenv(name)
}

func (h *OS) Pid() int {
	return getpid()
}

func (h *OS) Ppid() int {
	return getppid()
}

// Arch reports the build architecture (GOARCH).
func (h *OS) Arch() string {
	return runtime.GOARCH
}

// OS reports the build operating system family (GOOS).
func (h *OS) OS() string {
	return runtime.GOOS
}

// Versions reports the runtime version under RuntimeName and the Go toolchain under "go".
func (h *OS) Versions() map[string]string {
	return map[string]string{
		RuntimeName: runtimeVersion(),
		"go":        strings.TrimPrefix(runtime.Version(), "go"),
	}
}

func runtimeVersion() string {
	if BuildVersion != "dev" {
		return BuildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		v := strings.TrimPrefix(info.Main.Version, "v")
		if v != "" && v != "(devel)" {
			return v
		}
	}
	return "0.0.0-dev"
}

// Chdir changes the working directory. A missing directory yields an error
// matching fs.ErrNotExist.
func (h *OS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (h *OS) Getwd() (string, error) {
	return os.Getwd()
}

// Exit runs the logrus exit handlers and terminates the process.
func (h *OS) Exit(code int) {
	logrus.Exit(code)
}

func (h *OS) QueueMicrotask(fn func()) {
	h.tasks.Queue(fn)
}

// RunMicrotasks drains the microtask queue and returns how many tasks ran.
func (h *OS) RunMicrotasks() int {
	return h.tasks.Drain()
}

var _ Runtime = (*OS)(nil)
