package app

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ui"
)

// ErrUnknownDriver is returned by Init when the configured driver was never
// registered.
var ErrUnknownDriver = errors.New("app: unknown driver")

// HeadlessDriver is the name of the built-in driver without a display.
const HeadlessDriver = "headless"

// Driver connects a Context to the platform's event source.
type Driver interface {
	Init() error
	Uninit()
	// Pump processes pending platform events. With wait set it blocks
	// until at least one event or a Wake arrives. It reports whether the
	// platform asked the application to quit.
	Pump(wait bool) (quit bool)
	// Wake makes a blocked Pump return. It may be called from any
	// goroutine.
	Wake()
}

// DriverFactory creates a new driver instance.
type DriverFactory func() Driver

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]DriverFactory)
)

func init() {
	RegisterDriver(HeadlessDriver, func() Driver { return &headless{} })
}

// RegisterDriver makes a driver available by name. Registering a nil
// factory or a name twice is a contract violation.
func RegisterDriver(name string, factory DriverFactory) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if factory == nil {
		ui.Violation("app.RegisterDriver", "nil factory for %q", name)
	}
	if _, dup := drivers[name]; dup {
		ui.Violation("app.RegisterDriver", "driver %q registered twice", name)
	}
	drivers[name] = factory
}

// UnregisterDriver removes a driver. Removing an unknown name is a no-op.
func UnregisterDriver(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, name)
}

// Drivers returns the registered driver names in sorted order.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDriver(name string) (Driver, error) {
	driversMu.RLock()
	factory, ok := drivers[name]
	driversMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDriver, name)
	}
	return factory(), nil
}

// headless has no platform events; Pump only waits for Wake.
type headless struct {
	wake chan struct{}
}

func (h *headless) Init() error {
	h.wake = make(chan struct{}, 1)
	return nil
}

func (h *headless) Uninit() {}

func (h *headless) Pump(wait bool) bool {
	if wait {
		<-h.wake
		return false
	}
	select {
	case <-h.wake:
	default:
	}
	return false
}

func (h *headless) Wake() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}
