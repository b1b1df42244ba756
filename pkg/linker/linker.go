package linker

import (
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui/output"
	"github.com/rs/zerolog"
)

// Options configures a Linker
type Options struct {
	Paths   *paths.Paths
	Links   []config.LinkEntry
	FS      types.FS
	Printer *output.Printer
	DryRun  bool
}

// Linker runs the link pass for a profile
type Linker struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Linker. Paths, FS and Printer are required.
func New(opts Options) (*Linker, error) {
	switch {
	case opts.Paths == nil:
		return nil, errors.New(errors.ErrInternal, "linker requires paths")
	case opts.FS == nil:
		return nil, errors.New(errors.ErrInternal, "linker requires a filesystem")
	case opts.Printer == nil:
		return nil, errors.New(errors.ErrInternal, "linker requires a printer")
	}
	return &Linker{
		opts:   opts,
		logger: logging.GetLogger("linker"),
	}, nil
}

// Run creates the links for profile.
//
// The returned summary holds a result for every spec that was attempted,
// including the failing one when err is non-nil.
func (l *Linker) Run(profile string) (*types.Summary, error) {
	if err := paths.ValidateProfile(profile); err != nil {
		return nil, err
	}

	for _, concern := range paths.InspectProfile(profile) {
		l.logger.Warn().
			Str("profile", profile).
			Str("concern", string(concern)).
			Msg("Profile is used verbatim as a path segment")
	}

	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	specs := Plan(l.opts.Paths, profile, l.opts.Links)
	summary := &types.Summary{Profile: profile, DryRun: l.opts.DryRun}

	for _, spec := range specs {
		var result types.LinkResult
		if l.opts.DryRun {
			result = Check(l.opts.FS, spec)
		} else {
			result = Create(l.opts.FS, spec)
		}
		summary.Add(result)

		if err := l.handle(result); err != nil {
			return summary, err
		}
	}

	l.logger.Info().
		Str("profile", profile).
		Bool("dryRun", l.opts.DryRun).
		Int("created", summary.Created()).
		Int("planned", summary.Count(types.OutcomePlanned)).
		Int("skipped", summary.Skipped()).
		Msg("Link pass completed")

	return summary, nil
}

// handle reports a single result. A non-nil return ends the run.
func (l *Linker) handle(result types.LinkResult) error {
	spec := result.Spec

	switch result.Outcome {
	case types.OutcomeCreated:
		l.logger.Info().Str("source", spec.Source).Str("target", spec.Target).Msg("Symlink created")
		return nil

	case types.OutcomePlanned:
		l.logger.Debug().Str("source", spec.Source).Str("target", spec.Target).Msg("Symlink planned")
		return l.printed(l.opts.Printer.WouldLink(spec))

	case types.OutcomeAlreadyExists:
		l.logger.Debug().Str("target", spec.Target).Msg("Target already exists, skipping")
		return l.printed(l.opts.Printer.AlreadyExists(spec.Target))

	default:
		l.logger.Error().Err(result.Err).Str("source", spec.Source).Str("target", spec.Target).Msg("Symlink failed")
		return errors.LinkFailed(spec.Source, spec.Target, result.Err)
	}
}

func (l *Linker) printed(err error) error {
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write notice")
	}
	return nil
}
