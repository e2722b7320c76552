/*
Package modes is a small command-line dispatcher built around named modes.
A program registers a tree of modes, each with its own long-form options, and hands os.Args to the dispatcher.
The deepest mode named on the command line gets its callback called with the collected parameters, or the user gets usage information.

The dispatcher lives in the cli package, and the env package supports environment based configuration.
*/
package modes
