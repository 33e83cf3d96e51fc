package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "0.0.0"
	// Revision is the VCS revision of the build.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "0.0.0" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision, e.g. "1.2.3+abc1234".
func String() string {
	rev := Revision
	if len(rev) > 7 {
		rev = rev[:7]
	}

	return fmt.Sprintf("%s+%s", Version, rev)
}
