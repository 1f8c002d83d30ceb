// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
)

// FindHeader searches the include directories for a header file and
// returns the first match, or "" when none of them has it.
func (e *Environment) FindHeader(name string) string {
	for _, dir := range e.Includes {
		fullPath := filepath.Join(dir, name)
		if fileExists(fullPath) {
			return fullPath
		}
	}
	return ""
}

// GetCompilerFlags returns the -I flags for the resolved include
// directories, in resolution order.
func (e *Environment) GetCompilerFlags() CompilerFlags {
	flags := CompilerFlags{
		IncludeFlags: make([]string, 0, len(e.Includes)),
	}
	for _, dir := range e.Includes {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	return flags
}

// PluginPath returns where a plugin file named name is installed.
func (e *Environment) PluginPath(name string) string {
	if e.PluginDir == "" {
		return ""
	}
	return filepath.Join(e.PluginDir, filepath.Base(name))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
