package discover

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/core"
)

// Flags understood by mysql_config.
const (
	helperIncludeFlag   = "--include"
	helperIncludesFlag  = "--includes"
	helperPluginDirFlag = "--plugindir"
)

// includeFlag returns the helper argument for the given style.
func includeFlag(style core.HelperStyle) string {
	if style == core.HelperStyleIncludes {
		return helperIncludesFlag
	}
	return helperIncludeFlag
}

// queryHelper runs helper with a single flag and returns its trimmed
// standard output. A non-zero exit is an error carrying stderr.
func queryHelper(ctx context.Context, helper, flag string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, helper, flag)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("helper", helper).Str("flag", flag).Msg("querying config helper")

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", helper, flag, err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", helper, flag, err)
	}

	out := strings.TrimSpace(stdout.String())
	log.Debug().Str("helper", helper).Str("flag", flag).Str("output", out).Msg("config helper answered")
	return out, nil
}

// parseIncludes turns helper output into include directories. The
// singular style takes the whole output as one path; the plural style
// splits on whitespace and strips any -I prefix.
func parseIncludes(out string, style core.HelperStyle) []string {
	if style != core.HelperStyleIncludes {
		if out == "" {
			return nil
		}
		return []string{out}
	}

	var dirs []string
	for _, field := range strings.Fields(out) {
		dir := strings.TrimPrefix(field, "-I")
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
