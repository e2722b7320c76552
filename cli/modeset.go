package cli

import (
	"log/slog"
	"os"
)

// UsageFunc is called when the command line doesn't select a runnable [Mode].
// The mode is nil if no mode could be resolved, otherwise it's the deepest resolved mode along with any missing required options.
type UsageFunc = func(program string, mode *Mode, missing ...*Option)

// ModeSet is the registry of top-level modes, and the entry point for dispatching a command line.
// A ModeSet is not safe for concurrent use. Modes are expected to be registered before [ModeSet.Process] is called.
type ModeSet struct {
	modes   map[string]*Mode
	printer *Printer
	log     *slog.Logger
	config  Config
	usage   UsageFunc
	preExec []PreExec
}

// NewModeSet creates an empty [ModeSet] using [DefaultConfig].
func NewModeSet() *ModeSet {
	s := &ModeSet{
		modes:   map[string]*Mode{},
		printer: NewPrinter(),
	}
	return s.Configure(DefaultConfig())
}

// Configure applies the [Config] to this [ModeSet].
// This replaces any logger set with [ModeSet.WithLogger].
func (s *ModeSet) Configure(config Config) *ModeSet {
	s.config = config
	s.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	s.Printer().setColor(config.Color && isTerminalFn(int(os.Stderr.Fd())))
	return s
}

// WithLogger sets the logger used to report dispatch decisions.
func (s *ModeSet) WithLogger(log *slog.Logger) *ModeSet {
	if log == nil {
		panic("nil logger")
	}
	s.log = log
	return s
}

// OnUsage replaces the [UsageFunc] that's called when usage should be reported.
// Passing nil restores [ModeSet.PrintUsage].
func (s *ModeSet) OnUsage(usage UsageFunc) *ModeSet {
	s.usage = usage
	return s
}

// Printer returns the cached [Printer] for this [ModeSet].
func (s *ModeSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// AddMode registers a top-level [Mode].
// Registering the same name again replaces the earlier mode.
func (s *ModeSet) AddMode(name string, callback Callback) *Mode {
	if s.modes == nil {
		s.modes = map[string]*Mode{}
	}
	m := newMode(name, nil, callback)
	s.modes[name] = m
	return m
}

// Mode returns the top-level [Mode] with the given name.
func (s *ModeSet) Mode(name string) (*Mode, bool) {
	m, ok := s.modes[name]
	return m, ok
}

// Modes returns the names of all top-level modes, sorted alphabetically.
func (s *ModeSet) Modes() []string {
	return sortedKeys(s.modes)
}

// Reset drops all registered modes.
// The configuration, logger, usage function, and pre-exec functions are kept.
func (s *ModeSet) Reset() {
	s.modes = map[string]*Mode{}
}

// Resolve matches leading arguments to a path of modes, starting at the top level of this [ModeSet].
// Resolution stops at the first argument that doesn't name a mode at the current level, or after a mode without sub-modes.
// The remaining arguments are returned as-is.
func (s *ModeSet) Resolve(args []string) ([]*Mode, []string) {
	return resolve(args, s.modes)
}

func resolve(args []string, level map[string]*Mode) ([]*Mode, []string) {
	var stack []*Mode
	for i := 0; i < len(args); i++ {
		m, ok := level[args[i]]
		if !ok {
			return stack, args[i:]
		}
		stack = append(stack, m)
		if !m.HasSubmodes() {
			return stack, args[i+1:]
		}
		level = m.modes
	}
	return stack, nil
}
