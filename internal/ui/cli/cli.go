// Package cli implements the terminal output of the mazes: an art.Emitter that
// optionally centers the output on the terminal and colors walls and the solution path.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/mazeGo/internal/art"
	"github.com/janpfeifer/mazeGo/internal/render"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the number of runes left.
func displayWidth(s string) int {
	return utf8.RuneCountInString(ansiFilter.ReplaceAllString(s, ""))
}

// TerminalWidth returns the width of w if it is a terminal, or 0.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

type entry struct {
	text  string
	title bool
}

// UI collects the emitted lines and writes them on Flush, all with the same indentation,
// so a maze and its titles stay aligned.
//
// It implements art.TitleEmitter.
type UI struct {
	w     io.Writer
	color bool

	// Width of the terminal used to center; 0 disables centering.
	Width int

	entries []entry

	wallStyle, pathStyle, titleStyle lipgloss.Style
}

var _ art.TitleEmitter = (*UI)(nil)

// New creates a UI writing to w. Colors are only used if w supports them, and centering
// only if w is a terminal.
func New(w io.Writer, color, center bool) *UI {
	renderer := lipgloss.NewRenderer(w)
	ui := &UI{
		w:     w,
		color: color,
		wallStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("12")),
		pathStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		titleStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true),
	}
	if center {
		ui.Width = TerminalWidth(w)
	}
	return ui
}

// Emit implements art.Emitter.
func (ui *UI) Emit(line string) {
	ui.entries = append(ui.entries, entry{text: line})
}

// EmitTitle implements art.TitleEmitter.
func (ui *UI) EmitTitle(title string) {
	ui.entries = append(ui.entries, entry{text: title, title: true})
}

// Flush writes all the lines emitted so far.
func (ui *UI) Flush() error {
	lines := make([]string, 0, len(ui.entries))
	for _, e := range ui.entries {
		switch {
		case !ui.color:
			lines = append(lines, e.text)
		case e.title:
			lines = append(lines, ui.titleStyle.Render(e.text))
		default:
			lines = append(lines, ui.colorize(e.text))
		}
	}
	ui.entries = ui.entries[:0]
	_, err := io.WriteString(ui.w, centerBlock(lines, ui.Width))
	return errors.Wrap(err, "failed to write maze")
}

// centerBlock joins the lines, indenting all of them by the same amount so that the
// widest is centered in width. Empty lines are not indented.
func centerBlock(lines []string, width int) string {
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := ""
	if width > blockWidth {
		indent = strings.Repeat(" ", (width-blockWidth)/2)
	}
	var sb strings.Builder
	for _, line := range lines {
		if len(line) > 0 {
			sb.WriteString(indent)
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type runeClass int

const (
	plainClass runeClass = iota
	wallClass
	pathClass
)

func classify(r rune) runeClass {
	switch {
	case r == render.PathRune:
		return pathClass
	case r == render.BlockRune, r == render.WallRune, r == render.FloorRune:
		return wallClass
	case r >= 0x2500 && r <= 0x257f: // Box drawing block.
		return wallClass
	case r > 0 && r < ' ': // Legacy glyphs.
		return wallClass
	}
	return plainClass
}

// colorize renders runs of walls and path of the line with their styles.
func (ui *UI) colorize(line string) string {
	var sb strings.Builder
	var run []rune
	runClass := plainClass
	flush := func() {
		if len(run) == 0 {
			return
		}
		switch runClass {
		case wallClass:
			sb.WriteString(ui.wallStyle.Render(string(run)))
		case pathClass:
			sb.WriteString(ui.pathStyle.Render(string(run)))
		default:
			sb.WriteString(string(run))
		}
		run = run[:0]
	}
	for _, r := range line {
		if c := classify(r); c != runClass {
			flush()
			runClass = c
		}
		run = append(run, r)
	}
	flush()
	return sb.String()
}
