// Package version normalises platform version strings.
//
// Home-automation platforms publish beta builds as "2024.1.0b3" and nightly
// builds as "2024.1.0.dev0", neither of which is valid semver. ReplaceBeta maps
// both onto the release they precede.
package version

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// Tag is the hassgen release, set at build time with
// -ldflags "-X github.com/syssam/hassgen/internal/version.Tag=v1.2.3".
var Tag = "dev"

var betaSuffix = regexp.MustCompile(`\.0b\d+$`)

// ReplaceBeta parses a platform version, folding beta and dev suffixes into
// the release version. Missing minor or patch parts default to zero.
func ReplaceBeta(raw string) (*semver.Version, error) {
	s := strings.TrimSpace(raw)
	s = betaSuffix.ReplaceAllString(s, ".0")
	s = strings.ReplaceAll(s, ".dev0", ".0")
	s = trimZeroParts(s)
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid platform version %q", raw)
	}
	return v, nil
}

// trimZeroParts drops trailing ".0" components beyond major.minor.patch.
func trimZeroParts(s string) string {
	parts := strings.Split(s, ".")
	for len(parts) > 3 && parts[len(parts)-1] == "0" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ".")
}

// Check reports an error if v does not satisfy constraint. An empty
// constraint accepts every version.
func Check(v *semver.Version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	if !c.Check(v) {
		return errors.Newf("platform version %s does not satisfy %s", v, constraint)
	}
	return nil
}
