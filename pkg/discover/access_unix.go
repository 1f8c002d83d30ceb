//go:build !windows

package discover

import (
	"os"

	"golang.org/x/sys/unix"
)

// isAccessibleDir reports whether path is a directory the current user
// may traverse.
func isAccessibleDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

// isExecutableFile reports whether path is a regular file the current
// user may execute.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
