package cli

import (
	"fmt"
	"slices"
	"strings"
)

// Callback is executed when its [Mode] is the deepest one named on the command line, and all required options were given.
type Callback = func(params *Params, out *Printer) error

// Mode is a named node in the tree of modes available to the user.
// A Mode may define options, sub-modes, and a [Callback].
//
// Only the last Mode named on the command line will have its callback executed.
// Modes with sub-modes are usually just namespaces, and may leave the callback nil.
type Mode struct {
	name        string
	description string
	parent      []string
	options     map[string]*Option
	optionOrder []string
	modes       map[string]*Mode
	callback    Callback
}

func newMode(name string, parent []string, callback Callback) *Mode {
	return &Mode{
		name:     name,
		parent:   parent,
		options:  map[string]*Option{},
		modes:    map[string]*Mode{},
		callback: callback,
	}
}

// Name returns the name used to select this [Mode] on the command line.
func (m *Mode) Name() string {
	return m.name
}

// Describe sets a short description of the [Mode] to show in usage output.
func (m *Mode) Describe(format string, args ...any) *Mode {
	m.description = fmt.Sprintf(format, args...)
	return m
}

// Description returns the text set with [Mode.Describe].
func (m *Mode) Description() string {
	return m.description
}

// Does replaces the [Callback] for this [Mode].
func (m *Mode) Does(callback Callback) *Mode {
	m.callback = callback
	return m
}

// AddOption registers an option that will be collected as "--name=value".
// Registering a name again replaces the earlier option in place.
//
// Options are copied to sub-modes when they're created with [Mode.AddMode].
// Options added after that point are only visible to this [Mode].
func (m *Mode) AddOption(name string, required bool) *Option {
	opt := &Option{name: name, required: required}
	if _, exists := m.options[name]; !exists {
		m.optionOrder = append(m.optionOrder, name)
	}
	m.options[name] = opt
	return opt
}

// Option returns the named [Option] in this mode's effective option set.
func (m *Mode) Option(name string) (*Option, bool) {
	opt, ok := m.options[name]
	return opt, ok
}

// Options returns the effective option set of this [Mode] in registration order, inherited options first.
func (m *Mode) Options() []*Option {
	opts := make([]*Option, len(m.optionOrder))
	for i, name := range m.optionOrder {
		opts[i] = m.options[name]
	}
	return opts
}

// AddMode creates a sub-mode that starts out with a copy of this mode's options.
func (m *Mode) AddMode(name string, callback Callback) *Mode {
	sub := m.derive(name, callback)
	m.modes[name] = sub
	return sub
}

// derive creates a new Mode parented to this one, with an independent copy of the option set.
func (m *Mode) derive(name string, callback Callback) *Mode {
	sub := newMode(name, m.Path(), callback)
	sub.optionOrder = slices.Clone(m.optionOrder)
	for key, opt := range m.options {
		cp := *opt
		sub.options[key] = &cp
	}
	return sub
}

// Submode returns the direct sub-mode with the given name.
func (m *Mode) Submode(name string) (*Mode, bool) {
	sub, ok := m.modes[name]
	return sub, ok
}

// HasSubmodes reports whether this [Mode] has any sub-modes.
func (m *Mode) HasSubmodes() bool {
	return len(m.modes) > 0
}

// Submodes returns the names of this mode's direct sub-modes, sorted alphabetically.
func (m *Mode) Submodes() []string {
	return sortedKeys(m.modes)
}

// Path returns the names of the modes leading to this one, ending with this mode's name.
func (m *Mode) Path() []string {
	return append(slices.Clone(m.parent), m.name)
}

// Usage renders a single line of usage information, e.g. "top sub (a|b) --opt=<opt>".
func (m *Mode) Usage() string {
	parts := m.Path()
	if m.HasSubmodes() {
		parts = append(parts, "("+strings.Join(m.Submodes(), "|")+")")
	}
	for _, opt := range m.Options() {
		parts = append(parts, opt.String())
	}
	return strings.Join(parts, " ")
}

func (m *Mode) String() string {
	return fmt.Sprintf("<Mode %s>", strings.Join(m.Path(), " "))
}

func sortedKeys(modes map[string]*Mode) []string {
	keys := make([]string, 0, len(modes))
	for key := range modes {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
