// pkg/platform/resolver.go
package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// ResolveCompiler resolves which C compiler to use for the version probe
// and returns its path.
func ResolveCompiler(platform *Platform, configured string) (string, error) {
	return resolveCompiler(platform, configured, os.Getenv)
}

func resolveCompiler(platform *Platform, configured string, getenv func(string) string) (string, error) {
	var name string

	// Priority:
	// 1. Compiler named in config or on the command line
	// 2. $CC
	// 3. Platform preferred compiler
	if configured != "" {
		name = configured
	} else if cc := getenv("CC"); cc != "" {
		name = cc
	} else if platform != nil && platform.Preferred != "" {
		name = platform.Preferred
	} else {
		return "", fmt.Errorf("no C compiler found (tried %v); set CC or --cc", knownCompilers)
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("C compiler '%s' is not available: %w", name, err)
	}

	return path, nil
}

// LookupHelper returns the path of mysql_config on PATH.
func LookupHelper() (string, error) {
	path, err := exec.LookPath(HelperName)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", HelperName, err)
	}
	return path, nil
}
