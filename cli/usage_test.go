package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testUsageSet(t *testing.T) (*ModeSet, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	config := DefaultConfig()
	config.UsageWidth = 80
	set := NewModeSet().Configure(config)
	set.Printer().Redirect(&buf)

	run := set.AddMode("run", nil).Describe("Runs things")
	run.AddOption("foo", true)
	run.AddMode("quickly", nil).AddOption("bar", false)
	run.AddMode("slowly", nil)
	set.AddMode("add", nil)
	return set, &buf
}

func TestModeSet_PrintUsage_TopLevel(t *testing.T) {
	set, buf := testUsageSet(t)
	set.PrintUsage("tool", nil)

	expected := `Usage:
      tool add
  # Runs things
      tool run (quickly|slowly) --foo=<foo>
`
	assert.Equal(t, expected, buf.String())
}

func TestModeSet_PrintUsage_Mode(t *testing.T) {
	set, buf := testUsageSet(t)
	run, _ := set.Mode("run")
	quickly, _ := run.Submode("quickly")
	foo, _ := quickly.Option("foo")
	set.PrintUsage("tool", quickly, foo)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Usage:\n      tool run quickly --foo=<foo> --bar=<bar>\n"), out)
	assert.Contains(t, out, "\nFLAGS\n")
	assert.Contains(t, out, "--foo string   required")
	assert.Contains(t, out, "--bar string   optional")
	assert.Less(t, strings.Index(out, "--foo string"), strings.Index(out, "--bar string"), "Flags should keep registration order")
	assert.True(t, strings.HasSuffix(out, "\nMISSING\n  --foo=<foo>\n"), out)
	assert.NotContains(t, out, "# Runs things", "Sub-modes don't inherit descriptions")
}

func TestModeSet_PrintUsage_NoOptions(t *testing.T) {
	set, buf := testUsageSet(t)
	add, _ := set.Mode("add")
	set.PrintUsage("tool", add)
	assert.Equal(t, "Usage:\n      tool add\n", buf.String())
}

func TestModeSet_PrintUsage_Default(t *testing.T) {
	set, buf := testUsageSet(t)
	assert.NoError(t, set.Process([]string{"tool", "run", "quickly"}))
	out := buf.String()
	assert.Contains(t, out, "tool run quickly --foo=<foo> --bar=<bar>")
	assert.Contains(t, out, "MISSING\n  --foo=<foo>")

	buf.Reset()
	set.OnUsage(func(string, *Mode, ...*Option) {})
	assert.NoError(t, set.Process([]string{"tool"}))
	assert.Empty(t, buf.String(), "Custom usage function should replace printing")

	set.OnUsage(nil)
	assert.NoError(t, set.Process([]string{"tool"}))
	assert.Contains(t, buf.String(), "tool add")
}

func TestModeSet_usageWidth(t *testing.T) {
	origTerm, origSize := isTerminalFn, getSizeFn
	t.Cleanup(func() {
		isTerminalFn, getSizeFn = origTerm, origSize
	})
	set := NewModeSet()

	isTerminalFn = func(int) bool { return false }
	assert.Equal(t, defaultUsageWidth, set.usageWidth())

	isTerminalFn = func(int) bool { return true }
	getSizeFn = func(int) (int, int, error) { return 132, 40, nil }
	assert.Equal(t, 132, set.usageWidth())

	getSizeFn = func(int) (int, int, error) { return 0, 0, errors.New("no size") }
	assert.Equal(t, defaultUsageWidth, set.usageWidth())

	config := DefaultConfig()
	config.UsageWidth = 100
	set.Configure(config)
	assert.Equal(t, 100, set.usageWidth())
}

func TestPrinter_Colorize(t *testing.T) {
	p := &Printer{colorize: true}
	assert.NotEqual(t, "Usage:", p.heading("Usage:"))
	assert.Contains(t, p.heading("Usage:"), "Usage:")
	assert.Contains(t, p.warn("--foo=<foo>"), "\x1b[")

	var buf bytes.Buffer
	p.Redirect(&buf)
	assert.Equal(t, "Usage:", p.heading("Usage:"), "Redirecting should disable color")
}
