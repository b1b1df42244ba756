package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/arthur-debert/dotlink/pkg/ui/output"
	"github.com/arthur-debert/dotlink/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// PathResolver produces the install and home roots for a run
type PathResolver func() (*paths.Paths, error)

// UsageError marks errors caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(paths.Resolve, filesystem.NewOS())
}

func newRootCmd(resolvePaths PathResolver, fsys types.FS) *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "dotlink <profile>",
		Short:   MsgRootShort,
		Long:    rootLong(),
		Example: MsgRootExample,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, resolvePaths, fsys, args[0], dryRun)
		},
		ValidArgsFunction: profileCompletion(resolvePaths, fsys),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(versionTemplate())
	installMarkdownHelp(rootCmd, rootCmd.Long)

	return rootCmd
}

// rootLong is the root help text followed by the embedded link table
func rootLong() string {
	table := strings.TrimSpace(config.DefaultConfigContent())
	return MsgRootLong + "\n\n" + fmt.Sprintf(MsgLinkTable, table)
}

func versionTemplate() string {
	tmpl := MsgVersionTemplate
	if version.Commit != "" && version.Commit != "unknown" {
		tmpl += fmt.Sprintf(MsgBuildCommit, version.Commit)
	}
	if version.Date != "" && version.Date != "unknown" {
		tmpl += fmt.Sprintf(MsgBuildDate, version.Date)
	}
	return tmpl
}

func runLink(cmd *cobra.Command, resolvePaths PathResolver, fsys types.FS, profile string, dryRun bool) error {
	p, err := resolvePaths()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log.Info().
		Str("install_dir", p.InstallDir()).
		Str("home_dir", p.HomeDir()).
		Str("profile", profile).
		Bool("dry_run", dryRun).
		Msg("Linking profile")

	l, err := linker.New(linker.Options{
		Paths:   p,
		Links:   cfg.Links,
		FS:      fsys,
		Printer: output.NewPrinter(cmd.OutOrStdout(), ui.FormatAuto),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	if _, err := l.Run(profile); err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
	}
	return nil
}

// profileCompletion offers the directories under the install dir as profiles
func profileCompletion(resolvePaths PathResolver, fsys types.FS) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		p, err := resolvePaths()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		entries, err := fsys.ReadDir(p.InstallDir())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var profiles []string
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() || name == "" || name[0] == '.' {
				continue
			}
			profiles = append(profiles, name)
		}
		return profiles, cobra.ShellCompDirectiveNoFileComp
	}
}

// Execute runs the command and reports a failure on its error writer.
// It returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	printError(cmd.ErrOrStderr(), err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}
	return 1
}

func printError(w io.Writer, err error) {
	line := fmt.Sprintf(MsgErrorLine, err)
	if ui.IsTerminal(w) {
		line = styles.GetStyle("Error").Render(line)
	}
	fmt.Fprintln(w, line)
}
