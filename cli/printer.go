package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	warnColor    = color.New(color.FgRed)
)

// Printer is where user-visible output goes, which is STDERR by default.
type Printer struct {
	out        io.Writer
	colorize   bool
	redirected bool
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect sends output to the writer. Color is disabled from then on, since the writer may not be a terminal.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.colorize = false
	p.redirected = true
}

// setColor enables color for a printer still writing to STDERR.
func (p *Printer) setColor(enabled bool) {
	p.colorize = enabled && !p.redirected
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

func (p *Printer) heading(text string) string {
	return p.paint(headingColor, text)
}

func (p *Printer) warn(text string) string {
	return p.paint(warnColor, text)
}

func (p *Printer) paint(c *color.Color, text string) string {
	if !p.colorize {
		return text
	}
	painted := *c
	painted.EnableColor()
	return painted.Sprint(text)
}
