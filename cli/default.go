package cli

import "sync"

var (
	defaultMux sync.Mutex
	defaultSet = NewModeSet()
)

// Default returns the package level [ModeSet] used by [Register], [Process], and [Reset].
func Default() *ModeSet {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	return defaultSet
}

// Register adds a top-level [Mode] to the [Default] set.
func Register(name string, callback Callback) *Mode {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	return defaultSet.AddMode(name, callback)
}

// Process dispatches argv with the [Default] set. See [ModeSet.Process].
// The lock only guards registration and reset, and is not held while dispatching, so callbacks may use [Default] or [Register].
func Process(argv []string) error {
	return Default().Process(argv)
}

// Reset drops all modes registered with the [Default] set. This is mainly useful for testing.
func Reset() {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	defaultSet.Reset()
}
