package linker

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Create attempts to make spec.Target a symlink to spec.Source.
//
// An occupied target (file, directory or symlink, dangling or not) yields
// OutcomeAlreadyExists with an ErrSymlinkExists error. Any other error
// yields OutcomeFailed carrying the filesystem error.
func Create(fsys types.FS, spec types.LinkSpec) types.LinkResult {
	err := fsys.Symlink(spec.Source, spec.Target)
	switch {
	case err == nil:
		return types.LinkResult{Spec: spec, Outcome: types.OutcomeCreated}
	case stderrors.Is(err, fs.ErrExist):
		return types.LinkResult{
			Spec:    spec,
			Outcome: types.OutcomeAlreadyExists,
			Err:     errors.TargetExists(spec.Target, err),
		}
	default:
		return types.LinkResult{Spec: spec, Outcome: types.OutcomeFailed, Err: err}
	}
}

// Check is the dry-run counterpart of Create: it inspects the target
// without creating anything. A free target whose parent directory exists
// yields OutcomePlanned.
func Check(fsys types.FS, spec types.LinkSpec) types.LinkResult {
	_, err := fsys.Lstat(spec.Target)
	switch {
	case err == nil:
		return types.LinkResult{
			Spec:    spec,
			Outcome: types.OutcomeAlreadyExists,
			Err:     errors.TargetExists(spec.Target, nil),
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return types.LinkResult{Spec: spec, Outcome: types.OutcomeFailed, Err: err}
	}

	parent := filepath.Dir(spec.Target)
	info, err := fsys.Stat(parent)
	if err != nil {
		return types.LinkResult{Spec: spec, Outcome: types.OutcomeFailed, Err: err}
	}
	if !info.IsDir() {
		return types.LinkResult{
			Spec:    spec,
			Outcome: types.OutcomeFailed,
			Err:     &fs.PathError{Op: "symlink", Path: parent, Err: stderrors.New("not a directory")},
		}
	}

	return types.LinkResult{Spec: spec, Outcome: types.OutcomePlanned}
}
