// Package display renders walked entries for terminal output.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/depthls/depthls/internal/walker"
)

const modTimeFormat = "2006-01-02 15:04"

// ColorEnabled resolves a color mode (auto, always, never) against the
// actual output writer. In auto mode color is used only on a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}

// Renderer formats entries as single output lines.
type Renderer struct {
	long     bool
	dirStyle *color.Color
}

// NewRenderer creates a Renderer. With long set, each line carries an
// ls-style prefix (mode, size, modification time) before the path.
func NewRenderer(long, colorEnabled bool) *Renderer {
	dirStyle := color.New(color.FgCyan, color.Bold)
	if colorEnabled {
		dirStyle.EnableColor()
	} else {
		dirStyle.DisableColor()
	}
	return &Renderer{long: long, dirStyle: dirStyle}
}

// Line renders one entry.
func (r *Renderer) Line(e walker.Entry) string {
	path := e.Path
	if e.IsDir {
		path = r.dirStyle.Sprint(path)
	}
	if !r.long {
		return path
	}
	return fmt.Sprintf("%-10s %10d %s %s", e.Mode, e.Size, e.ModTime.Format(modTimeFormat), path)
}
