/*
Package cli provides a small dispatcher for command lines made up of nested modes and long-form options.

There are a few policies for how this operates.

  - Only long-form options are supported, and they must be given as --name=value. Values are always text.
  - Mode names must come before any options. Options are not accepted between mode names.
  - Options that no mode declared are ignored, so older binaries tolerate newer option sets.
  - Only the deepest mode named on the command line has its [Callback] executed.
  - User-visible output goes to STDERR by default. This is supported with a configurable [Printer].

# Invocation

Invoking a program built with this package always follows this form:

	PROGRAM MODE [SUB-MODE...] [--name=value...]

Just calling PROGRAM, or naming an unknown mode, will print usage information for all top-level modes.

# Options and sub-modes

Options registered on a [Mode] with [Mode.AddOption] are copied to each sub-mode created afterward with [Mode.AddMode].
This makes it easy to share options across a family of sub-modes, but options added to a mode later will not show up in existing sub-modes.

If a required option is missing, then the callback is not executed, and usage information is reported for the mode instead, along with the missing options.

# Registries

A [ModeSet] holds the top-level modes. Most programs can use the package level [Register] and [Process] functions, which use the [Default] set.
Tests should create their own set with [NewModeSet], or call [Reset] between cases.
*/
package cli
