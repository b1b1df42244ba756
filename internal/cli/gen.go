package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Shells lists the shells GenCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unknown shell %q (supported: %v)", shell, Shells)
	}
}

// GenManPage writes the section 1 man page
func GenManPage(rootCmd *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "DOTLINK",
		Section: "1",
		Source:  "dotlink " + version.Version,
		Manual:  "dotlink manual",
	}
	return doc.GenMan(rootCmd, header, w)
}
