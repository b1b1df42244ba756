package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// ProfileConcern names something unusual about a profile identifier.
type ProfileConcern string

const (
	// ConcernSeparator means the profile spans more than one path segment
	ConcernSeparator ProfileConcern = "contains a path separator"
	// ConcernParentRef means the profile contains a ".." segment
	ConcernParentRef ProfileConcern = "contains a parent directory reference"
	// ConcernAbsolute means the profile is an absolute path
	ConcernAbsolute ProfileConcern = "is an absolute path"
	// ConcernHiddenUnicode means the profile contains invisible or direction-changing runes
	ConcernHiddenUnicode ProfileConcern = "contains suspicious Unicode characters"
)

// ValidateProfile rejects a profile identifier that cannot name a directory
// at all. Anything else is accepted verbatim.
//
// The empty string is rejected even though joining it would be harmless
// (it links <install>/.aws, outside any profile): an empty argument is
// almost always a shell variable that failed to expand.
func ValidateProfile(profile string) error {
	if profile == "" {
		return errors.New(errors.ErrInvalidInput, "profile cannot be empty")
	}
	return nil
}

// InspectProfile reports the concerns a profile identifier raises. The
// profile is still used as given; callers log the concerns.
func InspectProfile(profile string) []ProfileConcern {
	var concerns []ProfileConcern

	if filepath.IsAbs(profile) {
		concerns = append(concerns, ConcernAbsolute)
	}
	if strings.ContainsRune(profile, filepath.Separator) || strings.ContainsRune(profile, '/') {
		concerns = append(concerns, ConcernSeparator)
	}
	for _, seg := range strings.FieldsFunc(profile, isSeparator) {
		if seg == ".." {
			concerns = append(concerns, ConcernParentRef)
			break
		}
	}
	for _, r := range profile {
		if r == '\u202e' || // Right-to-left override
			r == '\u200b' || // Zero-width space
			r == '\u00ad' { // Soft hyphen
			concerns = append(concerns, ConcernHiddenUnicode)
			break
		}
	}

	return concerns
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
