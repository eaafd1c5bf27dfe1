// Package genko holds module-wide metadata for the genko grid editor.
package genko

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Set via ldflags at build time.
var (
	Commit = "none"
	Date   = "unknown"
)

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionTemplate renders the `--version` output for the named binary.
func VersionTemplate(name string) string {
	if Commit != "none" && Commit != "" {
		return fmt.Sprintf("%s %s\n  commit: %s\n  built:  %s\n", name, VersionTag(), Commit, Date)
	}
	return fmt.Sprintf("%s %s\n", name, VersionTag())
}
