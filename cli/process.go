package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnreachableCallback = errors.New("mode has no callback") // ErrUnreachableCallback is returned when the resolved mode has neither a callback nor sub-modes.
)

// Process dispatches a complete command line, including the program name as the first element.
//
// If no mode can be resolved, or required options are missing, then usage is reported with the [UsageFunc] and nil is returned.
// Errors are only returned for malformed option arguments, misconfigured modes, or failing callbacks.
func (s *ModeSet) Process(argv []string) error {
	if s.log == nil {
		s.Configure(DefaultConfig())
	}
	var program string
	if len(argv) > 0 {
		program, argv = argv[0], argv[1:]
	}
	if len(argv) == 0 {
		s.log.Debug("No mode given")
		s.reportUsage(program, nil)
		return nil
	}

	stack, rest := s.Resolve(argv)
	if len(stack) == 0 {
		s.log.Debug("Unknown mode", "arg", argv[0])
		s.reportUsage(program, nil)
		return nil
	}
	mode := stack[len(stack)-1]
	path := strings.Join(mode.Path(), " ")
	s.log.Debug("Resolved mode", "path", path, "remaining", len(rest))

	params, err := mode.CollectParams(rest)
	if err != nil {
		return err
	}
	if !params.IsComplete() {
		s.log.Debug("Missing required options", "path", path, "missing", len(params.missing))
		s.reportUsage(program, mode, params.Missing()...)
		return nil
	}
	if mode.callback == nil {
		if mode.HasSubmodes() {
			s.log.Debug("Mode requires a sub-mode", "path", path)
			s.reportUsage(program, mode)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnreachableCallback, path)
	}
	if err := s.runPreExec(mode, params); err != nil {
		return err
	}
	s.log.Debug("Calling mode", "path", path, "params", params.Len())
	if err := mode.callback(params, s.Printer()); err != nil {
		if errors.Is(err, &UsageError{}) {
			s.Printer().Println(err)
			s.reportUsage(program, mode)
		}
		return err
	}
	return nil
}

func (s *ModeSet) reportUsage(program string, mode *Mode, missing ...*Option) {
	if s.usage != nil {
		s.usage(program, mode, missing...)
		return
	}
	s.PrintUsage(program, mode, missing...)
}
