package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrMalformedToken = errors.New("malformed option token") // ErrMalformedToken is returned when an argument in the option position has no '=' separator.
)

// Params is the collection of all parameters given on the command line for a [Mode].
// It may or may not be complete, as reported by [Params.IsComplete].
type Params struct {
	params  map[string]*Param
	missing []*Option
}

func newParams() *Params {
	return &Params{params: map[string]*Param{}}
}

// Get returns the [Param] with the given name, if it was given.
func (p *Params) Get(name string) (*Param, bool) {
	param, ok := p.params[name]
	return param, ok
}

// Has reports whether a [Param] with the given name was given.
func (p *Params) Has(name string) bool {
	_, ok := p.params[name]
	return ok
}

// Value returns the value of the named [Param], or an empty string if it wasn't given.
// Use [Params.Get] to tell an empty value apart from a missing one.
func (p *Params) Value(name string) string {
	if param, ok := p.params[name]; ok {
		return param.value
	}
	return ""
}

// Len returns the number of given params.
func (p *Params) Len() int {
	return len(p.params)
}

// Names returns the names of all given params, sorted alphabetically.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.params))
	for name := range p.params {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsComplete reports whether every required [Option] of the collecting [Mode] was given.
func (p *Params) IsComplete() bool {
	return len(p.missing) == 0
}

// Missing returns the required options that were not given, in the order they were registered.
func (p *Params) Missing() []*Option {
	return slices.Clone(p.missing)
}

// CollectParams parses "--name=value" arguments into [Params] for this [Mode].
// Arguments naming an option this mode doesn't know about are ignored.
// An argument without a '=' results in [ErrMalformedToken].
//
// Missing required options don't result in an error, they're reported by [Params.IsComplete] and [Params.Missing].
func (m *Mode) CollectParams(args []string) (*Params, error) {
	params := newParams()
	for _, arg := range args {
		key, val, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("%w: '%s' should look like %sname=value", ErrMalformedToken, arg, OptionPrefix)
		}
		name, ok := strings.CutPrefix(key, OptionPrefix)
		if !ok {
			continue
		}
		opt, ok := m.options[name]
		if !ok {
			continue
		}
		params.params[opt.name] = &Param{name: opt.name, value: val}
	}
	m.checkCompleteness(params)
	return params, nil
}

func (m *Mode) checkCompleteness(params *Params) {
	for _, name := range m.optionOrder {
		opt := m.options[name]
		if !opt.required {
			continue
		}
		if !params.Has(name) {
			params.missing = append(params.missing, opt)
		}
	}
}
