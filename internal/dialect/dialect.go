// Package dialect describes which Lua language version the front end targets
// and which syntax each version admits.
package dialect

import (
	"fmt"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// Feature is a piece of syntax that only exists from some Lua version on.
type Feature int

const (
	FeatureGoto          Feature = iota // goto statement keyword
	FeatureBitwise                      // & | ~ << >> and unary ~
	FeatureFloorDivision                // //
)

var featureNames = map[Feature]string{
	FeatureGoto:          "goto",
	FeatureBitwise:       "bitwise operators",
	FeatureFloorDivision: "floor division",
}

// String returns a human readable feature name.
func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(f))
}

// SupportedRange is the set of Lua versions the front end understands.
const SupportedRange = ">= 5.1, < 5.5"

// DefaultVersion is used when no version was requested.
const DefaultVersion = "5.4"

var (
	supported   = mustConstraint(SupportedRange)
	featureGate = map[Feature]*semver.Constraints{
		FeatureGoto:          mustConstraint(">= 5.2"),
		FeatureBitwise:       mustConstraint(">= 5.3"),
		FeatureFloorDivision: mustConstraint(">= 5.3"),
	}
	defaultVersion = semver.MustParse(DefaultVersion)
)

// Dialect is a target Lua version. The zero value is Lua 5.4.
type Dialect struct {
	version *semver.Version
}

// Default returns the Lua 5.4 dialect.
func Default() Dialect {
	return Dialect{version: defaultVersion}
}

// Parse reads a version such as "5.3", "5.4.6" or "Lua 5.1".
func Parse(v string) (Dialect, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Default(), nil
	}
	if len(v) > 3 && strings.EqualFold(v[:3], "lua") {
		v = strings.TrimSpace(v[3:])
	}

	sv, err := semver.NewVersion(v)
	if err != nil {
		return Dialect{}, fmt.Errorf("invalid Lua version %q: %w", v, err)
	}
	if !supported.Check(sv) {
		return Dialect{}, fmt.Errorf("unsupported Lua version %s (want %s)", sv, SupportedRange)
	}

	return Dialect{version: sv}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level variables.
func MustParse(v string) Dialect {
	d, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Version returns the underlying semantic version.
func (d Dialect) Version() *semver.Version {
	if d.version == nil {
		return defaultVersion
	}
	return d.version
}

// String returns the "major.minor" form, e.g. "5.4".
func (d Dialect) String() string {
	v := d.Version()
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Supports reports whether the dialect admits feature.
func (d Dialect) Supports(feature Feature) bool {
	c, ok := featureGate[feature]
	if !ok {
		return false
	}
	return c.Check(d.Version())
}

// Since returns the constraint a feature requires, for error messages.
func Since(feature Feature) string {
	if c, ok := featureGate[feature]; ok {
		return c.String()
	}
	return "<never>"
}

func mustConstraint(expr string) *semver.Constraints {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		panic(err)
	}
	return c
}
