package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern matches a trailing "(vN)" marker. Whitespace is allowed
// around the marker and inside the parentheses; nothing may follow ")".
var versionPattern = regexp.MustCompile(`(?i)^(.*?)\s*\(\s*v\s*(\d+)\s*\)\s*$`)

// ParsedName is a name split into its base and optional version.
type ParsedName struct {
	// Original is the input with surrounding whitespace removed.
	Original string
	// BaseName is Original without the "(vN)" marker.
	BaseName string
	// Version is N from the marker. Only meaningful when HasVersion is set.
	Version    int
	HasVersion bool
}

// ParseName trims raw and splits off a trailing "(vN)" marker, if any. The
// only error is a *VersionOverflowError when N does not fit in an int.
func ParseName(raw string) (ParsedName, error) {
	original := strings.TrimSpace(raw)
	m := versionPattern.FindStringSubmatch(original)
	if m == nil {
		return ParsedName{Original: original, BaseName: original}, nil
	}
	v, err := strconv.Atoi(m[2])
	if err != nil {
		return ParsedName{}, &VersionOverflowError{Input: original, Err: err}
	}
	return ParsedName{
		Original:   original,
		BaseName:   strings.TrimSpace(m[1]),
		Version:    v,
		HasVersion: true,
	}, nil
}

// WithVersion formats the base name with the marker for version n.
func (p ParsedName) WithVersion(n int) string {
	return fmt.Sprintf("%s (v%d)", p.BaseName, n)
}
