// Package hosttest provides an in-memory host.Runtime for tests.
package hosttest

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/mrzor/procshim/internal/host"
)

// Fake is an in-memory host. Zero values are usable; Calls counts every
// invocation by method name.
type Fake struct {
	mu sync.Mutex

	ExecPath     string
	Argv         []string
	Env          map[string]string
	PID          int
	PPID         int
	Architecture string
	OSFamily     string
	VersionInfo  map[string]string
	Dirs         map[string]bool
	Dir          string
	Gate         host.Gate

	ExitCodes []int
	Tasks     host.TaskQueue
	Calls     map[string]int
}

// New returns a Fake with a small default environment and working tree.
func New() *Fake {
	return &Fake{
		ExecPath:     "/usr/local/bin/procshim",
		Argv:         []string{"run", "main.js"},
		Env:          map[string]string{"PATH": "/usr/bin:/bin", "HOME": "/home/user"},
		PID:          4242,
		PPID:         1,
		Architecture: "amd64",
		OSFamily:     "linux",
		VersionInfo:  map[string]string{host.RuntimeName: "1.2.3", "go": "1.25.0"},
		Dirs:         map[string]bool{"/": true, "/work": true, "/work/std": true, "/work/std/node": true},
		Dir:          "/work/std",
	}
}

func (f *Fake) record(name string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[name]++
}

// CallCount returns how many times method was called.
func (f *Fake) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *Fake) check(perm host.Permission, detail string) error {
	if f.Gate == nil {
		return nil
	}
	return f.Gate(perm, detail)
}

func (f *Fake) Args() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Args")
	return append([]string{}, f.Argv...), nil
}

func (f *Fake) Executable() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Executable")
	if err := f.check(host.PermRead, "<exec_path>"); err != nil {
		return "", err
	}
	return f.ExecPath, nil
}

func (f *Fake) Environ() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Environ")
	if err := f.check(host.PermEnv, ""); err != nil {
		return nil, err
	}
	env := make(map[string]string, len(f.Env))
	for k, v := range f.Env {
		env[k] = v
	}
	return env, nil
}

func (f *Fake) LookupEnv(name string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LookupEnv")
	if err := f.check(host.PermEnv, name); err != nil {
		return "", false, err
	}
	v, ok := f.Env[name]
	return v, ok, nil
}

func (f *Fake) Setenv(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Setenv")
	if err := f.check(host.PermEnv, name); err != nil {
		return err
	}
	if f.Env == nil {
		f.Env = make(map[string]string)
	}
	f.Env[name] = value
	return nil
}

func (f *Fake) Unsetenv(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Unsetenv")
	if err := f.check(host.PermEnv, name); err != nil {
		return err
	}
	delete(f.Env, name)
	return nil
}

func (f *Fake) Pid() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Pid")
	return f.PID
}

func (f *Fake) Ppid() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Ppid")
	return f.PPID
}

func (f *Fake) Arch() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Arch")
	return f.Architecture
}

func (f *Fake) OS() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OS")
	return f.OSFamily
}

func (f *Fake) Versions() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Versions")
	out := make(map[string]string, len(f.VersionInfo))
	for k, v := range f.VersionInfo {
		out[k] = v
	}
	return out
}

// Chdir resolves dir against the current directory and fails with an error
// matching fs.ErrNotExist when it is not in Dirs.
func (f *Fake) Chdir(dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Chdir")
	target := dir
	if !path.IsAbs(target) {
		target = path.Join(f.Dir, target)
	}
	target = path.Clean(target)
	if !f.Dirs[target] {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fmt.Errorf("no such file or directory: %w", fs.ErrNotExist)}
	}
	f.Dir = target
	return nil
}

func (f *Fake) Getwd() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Getwd")
	return f.Dir, nil
}

// Exit records code instead of terminating.
func (f *Fake) Exit(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Exit")
	f.ExitCodes = append(f.ExitCodes, code)
}

func (f *Fake) QueueMicrotask(fn func()) {
	f.mu.Lock()
	f.record("QueueMicrotask")
	f.mu.Unlock()
	f.Tasks.Queue(fn)
}

func (f *Fake) RunMicrotasks() int {
	return f.Tasks.Drain()
}

var _ host.Runtime = (*Fake)(nil)
