// Package termide is the root of the terminal editor module. The editing
// core lives in the buffer, selection, history, clipboard and editor
// packages; cmd/termide is the executable.
package termide

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// Banner is what `termide -version` prints: the tag, the VCS revision when
// the binary was built from a checkout, and the Go toolchain.
func Banner() string {
	rev := revision()
	if rev == "" {
		return fmt.Sprintf("termide %s (%s)", VersionTag(), runtime.Version())
	}
	return fmt.Sprintf("termide %s (rev %s, %s)", VersionTag(), rev, runtime.Version())
}

// revision is the short VCS revision stamped by the go tool, with a
// "+dirty" suffix for modified trees.
func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
