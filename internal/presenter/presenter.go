// Package presenter renders tasks and banners as terminal text.
package presenter

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/domain"
)

const (
	// DefaultWidth is the separator width used when none is configured
	DefaultWidth = 80

	// StrikeMark is the combining long stroke overlay appended to each rune
	StrikeMark = '\u0336'

	// EmptyList is printed in place of task lines when there are none
	EmptyList = "Empty"

	pendingMarker = "[ ] "
	doneMarker    = "[x] "
)

// Heading is the title banner printed above the list.
const Heading = `
___  __      __   __             __  ___
 |  /  \    |  \ /  \    |    | /__` + "`" + `  | 
 |  \__/    |__/ \__/    |___ | .__/  |
`

// FarewellText is the exit banner.
const FarewellText = "Your list is saved. Goodbye!"

var (
	headingColor = lipgloss.Color("#A78BFA")
	noticeColor  = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#F87171")
)

// Presenter formats tasks for the menu.
type Presenter struct {
	Width int
	Color bool

	heading  lipgloss.Style
	farewell lipgloss.Style
	notice   lipgloss.Style
	errLine  lipgloss.Style
}

// New creates a Presenter whose styles are resolved against out, so colors
// are dropped when out is not a terminal.
func New(out io.Writer, width int, color bool) *Presenter {
	if width <= 0 {
		width = DefaultWidth
	}

	renderer := lipgloss.NewRenderer(out)
	return &Presenter{
		Width: width,
		Color: color,
		heading: renderer.NewStyle().
			Foreground(headingColor).
			Bold(true),
		farewell: renderer.NewStyle().
			Foreground(headingColor).
			Bold(true).
			Padding(0, 1),
		notice: renderer.NewStyle().
			Foreground(noticeColor),
		errLine: renderer.NewStyle().
			Foreground(errorColor).
			Bold(true),
	}
}

// FormatTask renders "[ ] Name" for pending tasks and a struck-through name
// behind "[x] " for completed ones.
func FormatTask(task domain.Task) string {
	if task.Done {
		return doneMarker + Strikethrough(task.Name)
	}
	return pendingMarker + task.Name
}

// Strikethrough appends StrikeMark after every rune of s.
func Strikethrough(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(StrikeMark)
	}
	return b.String()
}

// Separator returns a line of Width dashes.
func (p *Presenter) Separator() string {
	return strings.Repeat("-", p.width())
}

// RenderList renders the heading, a separator, one line per task (or
// EmptyList) and a closing separator. Every line ends in a newline.
func (p *Presenter) RenderList(tasks []domain.Task) string {
	var b strings.Builder

	b.WriteString(p.renderHeading())
	b.WriteString("\n")

	separator := p.Separator()
	b.WriteString(separator)
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(EmptyList)
		b.WriteString("\n")
	}
	for _, task := range tasks {
		b.WriteString(FormatTask(task))
		b.WriteString("\n")
	}

	b.WriteString(separator)
	b.WriteString("\n")
	return b.String()
}

// Farewell returns the exit banner.
func (p *Presenter) Farewell() string {
	return p.render(p.farewell, FarewellText)
}

// Notice returns a confirmation line such as "Added: Buy milk".
func (p *Presenter) Notice(msg string) string {
	return p.render(p.notice, msg)
}

// ErrorLine returns msg as an inline error.
func (p *Presenter) ErrorLine(msg string) string {
	return p.render(p.errLine, "Error: "+msg)
}

// renderHeading styles each line on its own so the art is not padded.
func (p *Presenter) renderHeading() string {
	lines := strings.Split(strings.Trim(Heading, "\n"), "\n")
	for i, line := range lines {
		lines[i] = p.render(p.heading, line)
	}
	return strings.Join(lines, "\n")
}

func (p *Presenter) render(style lipgloss.Style, s string) string {
	if !p.Color {
		return s
	}
	return style.Render(s)
}

func (p *Presenter) width() int {
	if p.Width <= 0 {
		return DefaultWidth
	}
	return p.Width
}
