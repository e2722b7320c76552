package cli

import "fmt"

// OptionPrefix is the marker that must precede an option name on the command line.
const OptionPrefix = "--"

// Option is a long-form option given as "--name=value" on the command line.
// Options are owned by the [Mode] that registered them, and are immutable once registered.
type Option struct {
	name     string
	required bool
}

// Name returns the option name, without the [OptionPrefix].
func (o *Option) Name() string {
	return o.name
}

// Required reports whether a [Mode] is incomplete without this option.
func (o *Option) Required() bool {
	return o.required
}

// String renders the option the way it's expected on the command line, e.g. "--name=<name>".
func (o *Option) String() string {
	return fmt.Sprintf("%s%s=<%s>", OptionPrefix, o.name, o.name)
}

// Param is an [Option] that was actually given on the command line.
type Param struct {
	name  string
	value string
}

// Name returns the name of the [Option] this Param was resolved from.
func (p *Param) Name() string {
	return p.name
}

// Value is the raw text given after the '=', which may be empty.
func (p *Param) Value() string {
	return p.value
}
