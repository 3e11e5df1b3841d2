// Package report renders engine results for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TrevorS/sway"
)

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorSplit = lipgloss.Color("#2C4A54")
	colorLeaf  = lipgloss.Color("#20B9B4")
	colorOK    = lipgloss.Color("#2CD7C7")
	colorFail  = lipgloss.Color("#E74C3C")
)

type renderFunc func(...string) string

func plain(s ...string) string { return strings.Join(s, "") }

type styles struct {
	title renderFunc
	split renderFunc
	leaf  renderFunc
	ok    renderFunc
	fail  renderFunc
}

// Printer writes styled reports to one writer.
type Printer struct {
	w  io.Writer
	st styles
}

// New returns a Printer whose styling adapts to w: colors are dropped when
// w is not a terminal.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{w: w, st: styles{
		title: r.NewStyle().Bold(true).Foreground(colorTitle).Render,
		split: r.NewStyle().Foreground(colorSplit).Render,
		leaf:  r.NewStyle().Foreground(colorLeaf).Render,
		ok:    r.NewStyle().Foreground(colorOK).Render,
		fail:  r.NewStyle().Bold(true).Foreground(colorFail).Render,
	}}
}

// NewPlain returns a Printer that never styles its output.
func NewPlain(w io.Writer) *Printer {
	return &Printer{w: w, st: styles{plain, plain, plain, plain, plain}}
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

// Title prints a heading.
func (p *Printer) Title(s string) error {
	return p.println(p.st.title(s))
}

// Line prints s unstyled.
func (p *Printer) Line(format string, args ...any) error {
	return p.println(fmt.Sprintf(format, args...))
}

// Stats prints one "label which {name:value ...}" line.
func (p *Printer) Stats(label string, t *sway.Table, which sway.Stat, cols []sway.Column, places int) error {
	s, err := sway.FormatStats(t, which, cols, places)
	if err != nil {
		return err
	}
	return p.println(fmt.Sprintf("%s %s %s", label, which, s))
}

// Tree prints the same lines as sway.Show with splits and leaves styled
// apart.
func (p *Printer) Tree(n sway.Node) error {
	var err error
	sway.Walk(n, func(n sway.Node, depth int) bool {
		if err != nil {
			return false
		}
		style := p.st.leaf
		if _, ok := n.(*sway.Split); ok {
			style = p.st.split
		}
		err = p.println(sway.Indent(depth) + style(sway.Label(n)))
		return err == nil
	})
	return err
}

// TreeStats prints sway.ShowStats.
func (p *Printer) TreeStats(n sway.Node, places int) error {
	return sway.ShowStats(p.w, n, places)
}

// Check prints a pass/fail line for a named check.
func (p *Printer) Check(name string, ok bool, detail string) error {
	mark := p.st.ok("✓ PASS")
	if !ok {
		mark = p.st.fail("✗ FAIL")
	}
	line := mark + " " + name
	if detail != "" {
		line += "  " + detail
	}
	return p.println(line)
}
