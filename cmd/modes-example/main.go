// Command modes-example shows a small tool built with the cli package.
//
//	modes-example run
//	modes-example greet --name=World
//	modes-example run quickly --foo=42 --bar=23
package main

import (
	"errors"
	"os"

	"github.com/saylorsolutions/modes/cli"
)

func main() {
	cli.Default().Configure(cli.LoadConfig())

	cli.Register("greet", func(params *cli.Params, out *cli.Printer) error {
		out.Printf("Hello, %s!\n", params.Value("name"))
		return nil
	}).Describe("Greets someone by name").AddOption("name", true)

	run := cli.Register("run", func(_ *cli.Params, out *cli.Printer) error {
		out.Println("Called.")
		return nil
	}).Describe("Runs, optionally quickly")
	run.AddOption("foo", false)
	run.AddMode("quickly", func(params *cli.Params, out *cli.Printer) error {
		out.Printf("Called with %s and %s\n", params.Value("foo"), params.Value("bar"))
		return nil
	}).Describe("Runs quickly").AddOption("bar", true)

	if err := cli.Process(os.Args); err != nil {
		if !errors.Is(err, &cli.UsageError{}) {
			cli.Default().Printer().Println("Error:", err)
		}
		os.Exit(1)
	}
}
