package paths

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/xsltview/pkg/errors"
)

// MaxPathLength is the longest candidate accepted by ValidatePath.
const MaxPathLength = 4096

// invalidPathChars are rejected anywhere in a path. They are illegal in
// Windows file names and in practice never intended in a stylesheet or
// output location on other platforms either.
const invalidPathChars = `<>"|?*`

// uriScheme matches a URI scheme prefix. Two characters minimum so that a
// Windows drive letter ("C:") is not mistaken for a scheme.
var uriScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]+:`)

// ValidatePath checks a filesystem path against the path grammar.
// It rejects:
// - Empty paths
// - Null bytes and other control characters
// - Invalid UTF-8
// - Characters from invalidPathChars
// - Excessive path length
func ValidatePath(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	return nil
}

func validatePath(path string) *errors.XsltviewError {
	if path == "" {
		return errors.New(errors.ErrInvalidPath, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidPath, "path contains null bytes")
	}

	if len(path) > MaxPathLength {
		return errors.New(errors.ErrInvalidPath, "path exceeds maximum length")
	}

	if !utf8.ValidString(path) {
		return errors.New(errors.ErrInvalidPath, "path is not valid UTF-8")
	}

	for _, r := range path {
		if r < 32 || r == 0x7f {
			return errors.New(errors.ErrInvalidPath, "path contains control characters")
		}
	}

	if i := strings.IndexAny(path, invalidPathChars); i >= 0 {
		return errors.Newf(errors.ErrInvalidPath,
			"path contains invalid character %q", path[i])
	}

	return nil
}

// HasURIScheme reports whether s starts with a URI scheme such as "file:".
func HasURIScheme(s string) bool {
	return uriScheme.MatchString(s)
}
