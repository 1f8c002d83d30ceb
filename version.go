package mysqlprobe

import (
	"github.com/maloquacious/semver"
)

var (
	buildVersion = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// Version returns the build version of mysqlprobe
func Version() semver.Version {
	return buildVersion
}

// VersionString renders Version for display
func VersionString() string {
	return Version().String()
}
