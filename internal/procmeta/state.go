package procmeta

import (
	"maps"
	"sync"

	"github.com/sirupsen/logrus"
)

// Field names a memoized part of the state.
type Field string

const (
	FieldArgv Field = "argv"
	FieldEnv  Field = "env"
)

// Source supplies the raw values a State realizes.
type Source interface {
	Executable() (string, error)
	Args() ([]string, error)
	Environ() (map[string]string, error)
}

// State memoizes argv and env for the lifetime of the process.
type State struct {
	mu  sync.Mutex
	src Source
	log logrus.FieldLogger

	args         []string
	argsRealized bool

	environ         map[string]string
	environRealized bool
}

// NewState creates an unrealized state. It does not touch src.
func NewState(src Source, log logrus.FieldLogger) *State {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &State{src: src, log: log}
}

func (s *State) realizeArgs() error {
	if s.argsRealized {
		return nil
	}

	execPath, err := s.src.Executable()
	if err != nil {
		s.log.WithField("field", FieldArgv).WithError(err).Debug("failed to realize process state")
		return err
	}
	rest, err := s.src.Args()
	if err != nil {
		s.log.WithField("field", FieldArgv).WithError(err).Debug("failed to realize process state")
		return err
	}

	args := make([]string, 0, len(rest)+1)
	args = append(args, execPath)
	args = append(args, rest...)

	s.args = args
	s.argsRealized = true
	s.log.WithFields(logrus.Fields{"field": FieldArgv, "len": len(args)}).Debug("realized process state")
	return nil
}

func (s *State) realizeEnviron() error {
	if s.environRealized {
		return nil
	}

	env, err := s.src.Environ()
	if err != nil {
		s.log.WithField("field", FieldEnv).WithError(err).Debug("failed to realize process state")
		return err
	}
	if env == nil {
		env = make(map[string]string)
	}

	s.environ = env
	s.environRealized = true
	s.log.WithFields(logrus.Fields{"field": FieldEnv, "len": len(env)}).Debug("realized process state")
	return nil
}

// Args returns the realized argument list. The same backing slice is returned
// on every call. The slice is unsynchronized shared storage: callers must not
// touch it while another goroutine writes through WithArgs.
func (s *State) Args() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.realizeArgs(); err != nil {
		return nil, err
	}
	return s.args, nil
}

// Environ returns the realized environment snapshot. The same map is returned
// on every call. The map is unsynchronized shared storage: callers must not
// read or write it while another goroutine uses WithEnviron.
func (s *State) Environ() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.realizeEnviron(); err != nil {
		return nil, err
	}
	return s.environ, nil
}

// WithArgs realizes argv and calls fn with the backing slice under the state lock.
// fn must not call back into s.
func (s *State) WithArgs(fn func(args []string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.realizeArgs(); err != nil {
		return err
	}
	return fn(s.args)
}

// WithEnviron realizes env and calls fn with the backing map under the state lock.
// fn must not call back into s.
func (s *State) WithEnviron(fn func(env map[string]string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.realizeEnviron(); err != nil {
		return err
	}
	return fn(s.environ)
}

// Realized reports whether field has been realized.
func (s *State) Realized(field Field) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case FieldArgv:
		return s.argsRealized
	case FieldEnv:
		return s.environRealized
	default:
		return false
	}
}

// Metadata realizes both fields and returns a detached copy.
func (s *State) Metadata() (*ProcessMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.realizeArgs(); err != nil {
		return nil, err
	}
	if err := s.realizeEnviron(); err != nil {
		return nil, err
	}

	args, cmdline := parseCmdline(s.args)
	return &ProcessMetadata{
		Environ:     maps.Clone(s.environ),
		Args:        args,
		CmdlineFull: cmdline,
	}, nil
}
