package chunk

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Path components that mark the repository relative part of a source path.
var sourcePathMarkers = []string{"tests", "scripts"}

// NormalizeSourcePath canonicalizes a test source path so checksums stay
// stable across machines and repository locations: the path is lower-cased,
// separators are normalized to "/", and everything before the left-most
// "tests" or "scripts" path component is stripped. A path without a marker
// component is returned lower-cased and separator-normalized only.
func NormalizeSourcePath(sourcePath string) string {
	if sourcePath == "" {
		return ""
	}

	normalized := strings.ToLower(strings.ReplaceAll(sourcePath, `\`, "/"))

	components := strings.Split(normalized, "/")
	for i, component := range components {
		for _, marker := range sourcePathMarkers {
			if component == marker {
				return strings.Join(components[i:], "/")
			}
		}
	}
	return normalized
}

// Checksum computes the portable identity of a test case from its name,
// documentation and source path. The three parts are concatenated without a
// separator, matching the checksum history of this tool, and hashed with
// MD5. Absent documentation or source is an empty string, not an error.
func Checksum(testName, documentation, sourcePath string) string {
	sum := md5.Sum([]byte(testName + documentation + NormalizeSourcePath(sourcePath)))
	return hex.EncodeToString(sum[:])
}
