package cli

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ApplyColorMode turns colored output on or off for out. In auto mode color
// is used only when out is a terminal.
func ApplyColorMode(mode string, out *os.File) {
	switch mode {
	case ColorOn:
		color.NoColor = false
	case ColorOff:
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTerminal(out)
	}
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
