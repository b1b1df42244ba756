// Package output writes the user-facing lines of a dotlink run.
//
// Plain text output is stable and meant to be grepped. Terminal output
// carries the same words with lipgloss styles applied.
package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/arthur-debert/dotlink/pkg/ui/output/styles"
)

// Message formats for plain text output
const (
	MsgAlreadyExists = "symlink: file %s already exists"
	MsgWouldLink     = "would link %s -> %s"
)

// Printer writes notices for one run
type Printer struct {
	w      io.Writer
	format ui.Format
}

// NewPrinter creates a printer writing to w. FormatAuto is resolved against w.
func NewPrinter(w io.Writer, format ui.Format) *Printer {
	return &Printer{w: w, format: ui.ResolveFormat(format, w)}
}

// Format returns the concrete format the printer renders with
func (p *Printer) Format() ui.Format {
	return p.format
}

// AlreadyExists reports a target that was left alone because it is occupied
func (p *Printer) AlreadyExists(target string) error {
	if p.format != ui.FormatTerminal {
		return p.println(fmt.Sprintf(MsgAlreadyExists, target))
	}
	return p.println(fmt.Sprintf("%s file %s already exists",
		styles.GetStyle("Warning").Render("symlink:"),
		styles.GetStyle("FilePath").Render(target)))
}

// WouldLink reports a link a dry run would create
func (p *Printer) WouldLink(spec types.LinkSpec) error {
	if p.format != ui.FormatTerminal {
		return p.println(fmt.Sprintf(MsgWouldLink, spec.Target, spec.Source))
	}
	return p.println(fmt.Sprintf("%s %s -> %s",
		styles.GetStyle("Muted").Render("would link"),
		styles.GetStyle("FilePath").Render(spec.Target),
		spec.Source))
}

func (p *Printer) println(line string) error {
	_, err := fmt.Fprintln(p.w, line)
	return err
}
