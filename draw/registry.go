package draw

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ui"
)

// ErrUnknownBackend is returned by NewBackend for names that were never
// registered.
var ErrUnknownBackend = errors.New("draw: unknown backend")

// RecordingBackend is the name of the built-in Recorder backend.
const RecordingBackend = "recording"

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register(RecordingBackend, func() Backend { return NewRecorder() })
}

// Register makes a backend available by name. It is typically called from
// an init function of the backend's package.
//
// Registering a nil factory or a name twice is a contract violation.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		ui.Violation("draw.Register", "nil factory for %q", name)
	}
	if _, dup := backends[name]; dup {
		ui.Violation("draw.Register", "backend %q registered twice", name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry. Removing an unknown name
// is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new instance of the named backend.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	ui.Logger().Info("draw backend selected", "name", name)
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
