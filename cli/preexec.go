package cli

// PreExec is a function that may run right before a [Mode] callback, with the params collected for it.
type PreExec func(mode *Mode, params *Params) error

// AddPreExec registers a function that will be executed right before any [Callback] runs.
// If an error is returned from a [PreExec], then the callback will not be executed, and the error will be returned from [ModeSet.Process] instead.
// No [PreExec] is run when usage is reported instead.
//
// Passing a nil [PreExec] function to this method will panic.
func (s *ModeSet) AddPreExec(fn PreExec) *ModeSet {
	if fn == nil {
		panic("nil pre-exec function")
	}
	s.preExec = append(s.preExec, fn)
	return s
}

func (s *ModeSet) runPreExec(mode *Mode, params *Params) error {
	for _, fn := range s.preExec {
		if err := fn(mode, params); err != nil {
			return err
		}
	}
	return nil
}
