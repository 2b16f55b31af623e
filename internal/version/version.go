// Package version holds the lpgen release version and the rules for
// reading data written by other releases.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

const Current = "v0.1.0"

// IsCompatible reports whether data written by version written can be read
// by version reader. Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatible(written, reader string) (bool, error) {
	if !semver.IsValid(written) {
		return false, fmt.Errorf("invalid version: %q", written)
	}
	if !semver.IsValid(reader) {
		return false, fmt.Errorf("invalid version: %q", reader)
	}

	return semver.Major(written) == semver.Major(reader), nil
}

// CompatibilityError returns a user-facing message for incompatible versions.
func CompatibilityError(written, reader string) string {
	return fmt.Sprintf(
		"data written by %s cannot be read by %s. Required version: %s.x.x",
		written, reader, semver.Major(reader),
	)
}
