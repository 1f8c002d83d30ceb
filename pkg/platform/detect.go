// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
)

// knownCompilers are tried in order when nothing else names a compiler
var knownCompilers = []string{"cc", "gcc", "clang"}

// HelperName is the config helper shipped with MySQL
const HelperName = "mysql_config"

// Platform represents the detected build toolchain
type Platform struct {
	OS        string   // linux, darwin, freebsd, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // C compilers found on PATH
	Preferred string   // Compiler used when none is configured
	Helper    string   // Path of mysql_config on PATH, if any
}

// Detect detects the current platform, the available C compilers and
// whether a MySQL config helper is on PATH
func Detect() (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	switch p.OS {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "windows":
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", p.OS)
	}

	for _, cc := range knownCompilers {
		if commandExists(cc) {
			p.Available = append(p.Available, cc)
		}
	}

	// clang is the system compiler on darwin even when cc is a shim
	if p.OS == "darwin" && slices.Contains(p.Available, "clang") {
		p.Preferred = "clang"
	}
	if p.Preferred == "" && len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	if path, err := exec.LookPath(HelperName); err == nil {
		p.Helper = path
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (compilers: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
