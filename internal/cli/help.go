package cli

import (
	"io"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const helpWrapWidth = 80

// renderMarkdown renders markdown for a terminal writer and returns it
// untouched for anything else.
func renderMarkdown(content string, w io.Writer) string {
	if !ui.IsTerminal(w) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWrapWidth),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// installMarkdownHelp renders the command's Long text just before help is shown,
// once the output writer is known.
func installMarkdownHelp(cmd *cobra.Command, markdown string) {
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		c.Long = renderMarkdown(markdown, c.OutOrStdout())
		defaultHelp(c, args)
	})
}
