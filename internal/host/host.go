package host

import (
	"errors"
	"fmt"
)

// RuntimeName is the key under which Versions reports the runtime's own version.
const RuntimeName = "procshim"

// ErrPermissionDenied is wrapped by every error a Gate produces.
var ErrPermissionDenied = errors.New("permission denied")

// Runtime supplies the raw process primitives.
type Runtime interface {
	// Args returns the invocation arguments without the program name.
	Args() ([]string, error)
	// Executable returns the resolved path of the running binary.
	Executable() (string, error)
	// Environ returns a fresh snapshot of the environment.
	Environ() (map[string]string, error)
	LookupEnv(name string) (string, bool, error)
	Setenv(name, value string) error
	Unsetenv(name string) error

	Pid() int
	Ppid() int
	Arch() string
	OS() string
	Versions() map[string]string

	Chdir(dir string) error
	Getwd() (string, error)
	Exit(code int)

	// QueueMicrotask schedules fn to run after the current synchronous work.
	QueueMicrotask(fn func())
	// RunMicrotasks drains queued microtasks and returns how many ran.
	RunMicrotasks() int
}

// Permission names a class of host access.
type Permission string

const (
	// PermEnv guards environment access.
	PermEnv Permission = "env"
	// PermRead guards filesystem reads such as resolving the executable path.
	PermRead Permission = "read"
)

// Gate decides whether an access is allowed. A nil Gate allows everything.
type Gate func(perm Permission, detail string) error

// DenyAll returns a Gate refusing the given permissions and allowing the rest.
func DenyAll(perms ...Permission) Gate {
	denied := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		denied[p] = true
	}
	return func(perm Permission, detail string) error {
		if denied[perm] {
			return &PermissionError{Perm: perm, Detail: detail}
		}
		return nil
	}
}

// PermissionError reports a denied access.
type PermissionError struct {
	Perm   Permission
	Detail string
}

func (e *PermissionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("requires %s access", e.Perm)
	}
	return fmt.Sprintf("requires %s access to %q", e.Perm, e.Detail)
}

// Unwrap makes errors.Is(err, ErrPermissionDenied) hold.
func (e *PermissionError) Unwrap() error {
	return ErrPermissionDenied
}
