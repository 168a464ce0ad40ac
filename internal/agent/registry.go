// ABOUTME: Process-wide registry of named agent constructors.
// ABOUTME: Implementations register themselves; config selects one by name.

package agent

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a fresh agent instance. The returned value must
// implement at least one of Source, Processor, Sink, or Service.
type Factory func() any

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes an agent constructor available under the given name,
// typically from an init function in the implementing package. It panics if
// the name is already taken.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if factory == nil {
		panic("agent: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("agent: Register called twice for %q", name))
	}
	factories[name] = factory
}

// New instantiates the agent registered under name.
func New(name string) (any, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown agent %q (registered: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns the registered agent names in sorted order.
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuntimeContext is the Context handed to agents at Init time.
type RuntimeContext struct {
	StateDir string
}

// PersistentStateDirectory implements Context.
func (c RuntimeContext) PersistentStateDirectory() string { return c.StateDir }
