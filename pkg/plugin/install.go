// Package plugin installs built server plugins into the plugin directory
// discovery resolved.
package plugin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/status"
)

// Mode is the permission installed plugins get.
const Mode os.FileMode = 0755

// Install copies each of srcs into e.PluginDir and returns the installed
// paths. It stops at the first failure.
func Install(e *env.Environment, srcs []string, r *status.Reporter) ([]string, error) {
	if e.PluginDir == "" {
		return nil, fmt.Errorf("no mysql plugin directory resolved, run 'mysqlprobe configure --require plugin'")
	}

	installed := make([]string, 0, len(srcs))
	for _, src := range srcs {
		dst := e.PluginPath(src)
		r.Startf("Installing %s", filepath.Base(src))
		if err := installFile(src, dst); err != nil {
			r.Fail("failed")
			return installed, err
		}
		r.End(dst)
		log.Info().Str("plugin", src).Str("dest", dst).Msg("plugin installed")
		installed = append(installed, dst)
	}
	return installed, nil
}

// installFile copies src next to dst and renames it into place so a
// running server never loads a half-written file.
func installFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("plugin %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("plugin %s: not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".install-*")
	if err != nil {
		return fmt.Errorf("plugin %s: %w", src, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), Mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
