package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger creates the logger used for per-file status lines.
// Colour is only enabled when out is a terminal.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "spritesize",
		Output: out,
		Level:  level,
		Color:  colorOption(out),
	})
}

func colorOption(out io.Writer) hclog.ColorOption {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return hclog.ForceColor
	}
	return hclog.ColorOff
}
