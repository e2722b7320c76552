package cli

import (
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

// PrintUsage is the default [UsageFunc].
// With a nil mode, every top-level mode is listed. Otherwise the mode is shown along with its flags, and any missing options.
func (s *ModeSet) PrintUsage(program string, mode *Mode, missing ...*Option) {
	var (
		buf  strings.Builder
		p    = s.Printer()
		list []*Mode
	)
	if mode != nil {
		list = []*Mode{mode}
	} else {
		for _, name := range s.Modes() {
			list = append(list, s.modes[name])
		}
	}

	buf.WriteString(p.heading("Usage:") + "\n")
	for _, m := range list {
		if len(m.description) > 0 {
			buf.WriteString("  # " + m.description + "\n")
		}
		buf.WriteString("      " + strings.TrimSpace(program+" "+m.Usage()) + "\n")
	}
	if mode != nil && len(mode.optionOrder) > 0 {
		buf.WriteString("\n" + p.heading("FLAGS") + "\n")
		buf.WriteString(mode.flagSet().FlagUsagesWrapped(s.usageWidth()))
	}
	if len(missing) > 0 {
		buf.WriteString("\n" + p.heading("MISSING") + "\n")
		for _, opt := range missing {
			buf.WriteString("  " + p.warn(opt.String()) + "\n")
		}
	}
	p.Print(buf.String())
}

// flagSet mirrors the mode's options in a [flag.FlagSet] to render flag usage.
// The flag set is never used for parsing.
func (m *Mode) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(m.name, flag.ContinueOnError)
	fs.SortFlags = false
	for _, opt := range m.Options() {
		usage := "optional"
		if opt.required {
			usage = "required"
		}
		fs.String(opt.name, "", usage)
	}
	return fs
}

func (s *ModeSet) usageWidth() int {
	if s.config.UsageWidth > 0 {
		return s.config.UsageWidth
	}
	fd := int(os.Stderr.Fd())
	if isTerminalFn(fd) {
		if cols, _, err := getSizeFn(fd); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultUsageWidth
}
