package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

const clearScreen = "\033[H\033[2J"

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type Option func(*Renderer)

// WithClear makes every frame start from a cleared screen.
func WithClear(enabled bool) Option {
	return func(r *Renderer) {
		r.clear = enabled
	}
}

// WithColor styles cell values with the classic minesweeper palette.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.styles = newStyles(lipgloss.NewRenderer(r.out))
		} else {
			r.styles = nil
		}
	}
}

// Renderer draws a board as a text grid with a column header and row
// prefixes, each index right-aligned in two characters.
type Renderer struct {
	out    io.Writer
	clear  bool
	styles *styles
	notice string
}

func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(b *mines.Board, revealAll bool) error {
	var sb strings.Builder
	if r.clear {
		sb.WriteString(clearScreen)
	}

	sb.WriteString("   ")
	for x := range b.Width() {
		if x > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')

	for y := range b.Height() {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := range b.Width() {
			sb.WriteString(r.styles.render(padCell(session.CellText(b, x, y, revealAll))))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	// a notice survives exactly one redraw so it is not wiped by the clear
	if r.notice != "" {
		sb.WriteString(r.notice + "\n")
		r.notice = ""
	}

	_, err := io.WriteString(r.out, sb.String())
	return err
}

// padCell fits a cell into two columns: numbers and the hidden marker
// hug the right edge, the mine marker the left.
func padCell(text string) string {
	if text == mines.Mine.String() {
		return fmt.Sprintf("%-2s", text)
	}
	return fmt.Sprintf("%2s", text)
}

// Notify prints msg right away. When the screen is cleared between
// frames, the message is also repeated under the next board.
func (r *Renderer) Notify(msg string) error {
	if r.clear {
		r.notice = msg
	}
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

type styles struct {
	digits [9]lipgloss.Style
	mine   lipgloss.Style
	hidden lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer) *styles {
	s := &styles{
		mine:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		hidden: lr.NewStyle().Foreground(lipgloss.Color("240")),
	}
	palette := []string{"245", "12", "10", "9", "4", "1", "6", "13", "8"}
	for i, c := range palette {
		s.digits[i] = lr.NewStyle().Foreground(lipgloss.Color(c))
	}
	return s
}

// render styles an already padded cell; a nil receiver leaves it plain.
func (s *styles) render(cell string) string {
	if s == nil {
		return cell
	}
	switch v := strings.TrimSpace(cell); {
	case v == session.HiddenCell:
		return s.hidden.Render(cell)
	case v == mines.Mine.String():
		return s.mine.Render(cell)
	case len(v) == 1 && '0' <= v[0] && v[0] <= '8':
		return s.digits[v[0]-'0'].Render(cell)
	default:
		return cell
	}
}
