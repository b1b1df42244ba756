package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Default directories and files
const (
	// AppDirName is the directory name for dotlink-specific state
	AppDirName = "dotlink"

	// LogFileName is the name of the log file
	LogFileName = "dotlink.log"
)

// Paths holds the two roots a run works between: the installation directory
// the link sources live in and the home directory the links are created in.
type Paths struct {
	installDir string
	homeDir    string
}

// New creates a Paths from explicit roots. Both must be absolute.
func New(installDir, homeDir string) (*Paths, error) {
	if installDir == "" || !filepath.IsAbs(installDir) {
		return nil, errors.Newf(errors.ErrInvalidInput, "install directory must be an absolute path: %q", installDir).
			WithDetail("installDir", installDir)
	}
	if homeDir == "" || !filepath.IsAbs(homeDir) {
		return nil, errors.Newf(errors.ErrInvalidInput, "home directory must be an absolute path: %q", homeDir).
			WithDetail("homeDir", homeDir)
	}
	return &Paths{installDir: installDir, homeDir: homeDir}, nil
}

// Resolve determines the roots for the current process: the directory holding
// the running executable and the invoking user's home directory.
func Resolve() (*Paths, error) {
	installDir, err := executableDir()
	if err != nil {
		return nil, err
	}
	homeDir, err := userHomeDir()
	if err != nil {
		return nil, err
	}
	return New(installDir, homeDir)
}

// InstallDir returns the directory the link sources are rooted at
func (p *Paths) InstallDir() string {
	return p.installDir
}

// HomeDir returns the directory the links are created in
func (p *Paths) HomeDir() string {
	return p.homeDir
}

// InstallPath joins segments onto the install directory without cleaning.
func (p *Paths) InstallPath(segments ...string) string {
	return JoinVerbatim(append([]string{p.installDir}, segments...)...)
}

// HomePath joins segments onto the home directory without cleaning.
func (p *Paths) HomePath(segments ...string) string {
	return JoinVerbatim(append([]string{p.homeDir}, segments...)...)
}

// JoinVerbatim concatenates path elements with the OS separator.
//
// Unlike filepath.Join the result is not cleaned: ".." and "." segments are
// kept as written, so a symlink created from the result stores exactly the
// text the caller supplied. Empty elements are skipped and no separator is
// doubled at element boundaries. An absolute element discards everything
// before it, the way path concatenation does in most shells and languages.
func JoinVerbatim(elem ...string) string {
	sep := string(filepath.Separator)
	var b strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if filepath.IsAbs(e) {
			b.Reset()
		}
		if b.Len() > 0 {
			endsWithSep := strings.HasSuffix(b.String(), sep)
			startsWithSep := strings.HasPrefix(e, sep)
			switch {
			case endsWithSep && startsWithSep:
				e = strings.TrimLeft(e, sep)
			case !endsWithSep && !startsWithSep:
				b.WriteString(sep)
			}
		}
		b.WriteString(e)
	}
	return b.String()
}

// LogFilePath returns the path to the log file under the XDG state directory
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// executableDir returns the directory containing the running binary
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to locate executable")
	}
	return filepath.Dir(exe), nil
}

// userHomeDir returns the invoking user's home directory, cleaned
func userHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}
	home = filepath.Clean(home)
	if home == "." || !filepath.IsAbs(home) {
		return "", errors.Newf(errors.ErrInvalidInput, "home directory is not an absolute path: %q", home)
	}
	return home, nil
}
