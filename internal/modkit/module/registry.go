package module

import "sync"

// registry holds the modules a binary has built, by name
var registry struct {
	sync.RWMutex
	mods map[string]Module
}

// Register records m under m.Name(). A later module with the same name replaces it
func Register(m Module) {
	registry.Lock()
	defer registry.Unlock()
	if registry.mods == nil {
		registry.mods = map[string]Module{}
	}
	registry.mods[m.Name()] = m
}

// Lookup returns the module registered under name
func Lookup(name string) (Module, bool) {
	registry.RLock()
	defer registry.RUnlock()
	m, ok := registry.mods[name]
	return m, ok
}

// PortsAs resolves a T from the ports of the module registered under name, with the
// same field matching as PortsOf
func PortsAs[T any](name string) (T, bool) {
	m, ok := Lookup(name)
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}

// Reset forgets every registered module
func Reset() {
	registry.Lock()
	registry.mods = nil
	registry.Unlock()
}
