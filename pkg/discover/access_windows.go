//go:build windows

package discover

import (
	"os"
	"path/filepath"
	"strings"
)

// isAccessibleDir reports whether path is a directory. Windows has no
// traverse bit to check.
func isAccessibleDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isExecutableFile reports whether path is a regular file with an
// executable extension.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd", ".com":
		return true
	}
	return false
}
