package shell

import "fmt"

const defaultRegistryCap = 4

// Registry is a fixed-capacity set of live shell instances. It exists for
// code that runs outside a handler's call stack and still needs to find "the
// shell a handler is executing on"; handlers themselves always receive their
// instance explicitly. Like the shells it holds, a Registry is not safe for
// concurrent use.
type Registry struct {
	shells []*Shell
	limit  int
}

// NewRegistry returns a registry holding at most capacity shells.
// capacity <= 0 selects a small default.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = defaultRegistryCap
	}
	return &Registry{limit: capacity}
}

// Add registers a shell. Registering beyond capacity is a configuration
// error and is reported rather than silently dropped.
func (r *Registry) Add(s *Shell) error {
	if s == nil {
		return fmt.Errorf("shell registry: nil shell")
	}
	if len(r.shells) >= r.limit {
		return fmt.Errorf("shell registry: capacity %d exceeded", r.limit)
	}
	r.shells = append(r.shells, s)
	return nil
}

// Active returns the shell currently executing a dispatched handler, or nil
// when no registered shell is mid-dispatch.
func (r *Registry) Active() *Shell {
	for _, s := range r.shells {
		if s.active {
			return s
		}
	}
	return nil
}

// Len returns the number of registered shells.
func (r *Registry) Len() int {
	return len(r.shells)
}
