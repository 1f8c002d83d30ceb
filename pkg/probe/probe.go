// Package probe reads a version macro out of a C header by compiling and
// running a one-line program against it.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/core"
	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/status"
)

// Prober compiles the probe program with Compiler.
type Prober struct {
	Compiler string           // C compiler path
	Header   string           // header that defines Macro, e.g. "mysql.h"
	Macro    string           // string macro to print, e.g. "MYSQL_SERVER_VERSION"
	Reporter *status.Reporter // optional
	TempDir  string           // parent of the scratch directory; os.TempDir() if empty
}

// Source returns the probe program for header and macro.
func Source(header, macro string) string {
	return fmt.Sprintf(`#include <stdio.h>
#include "%s"

int main(void)
{
    printf("%%s", %s);
    return 0;
}
`, header, macro)
}

// Version compiles the probe with every directory of includes on the
// header search path, runs it, and returns its trimmed output.
func (p *Prober) Version(ctx context.Context, includes []string) (string, error) {
	r := p.Reporter

	r.Start("Checking for " + p.Header)
	header := (&env.Environment{Includes: includes}).FindHeader(p.Header)
	if header == "" {
		r.Fail("not found")
		return "", core.Errorf(core.ErrProbeFailure, p.Header, "",
			"not found in %s", strings.Join(includes, ", "))
	}
	r.End(header)

	r.Start("Checking for " + p.Macro)

	dir, err := os.MkdirTemp(p.TempDir, "mysqlprobe-")
	if err != nil {
		r.Fail("no scratch directory")
		return "", core.Errorf(core.ErrProbeFailure, "probe", "", "creating scratch directory: %v", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "probe.c")
	if err := os.WriteFile(src, []byte(Source(p.Header, p.Macro)), 0644); err != nil {
		r.Fail("write failed")
		return "", core.Errorf(core.ErrProbeFailure, "probe", src, "%v", err)
	}

	bin := filepath.Join(dir, "probe")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	args := make([]string, 0, len(includes)+4)
	for _, inc := range includes {
		args = append(args, "-I"+inc)
	}
	args = append(args, "-o", bin, src)

	if out, err := run(ctx, dir, p.Compiler, args...); err != nil {
		r.Fail("compile failed")
		return "", core.Errorf(core.ErrProbeFailure, "compile", p.Compiler, "%v%s", err, detail(out))
	}

	out, err := run(ctx, dir, bin)
	if err != nil {
		r.Fail("run failed")
		return "", core.Errorf(core.ErrProbeFailure, "run", bin, "%v%s", err, detail(out))
	}

	version := strings.TrimSpace(out)
	log.Debug().Str("macro", p.Macro).Str("value", version).Msg("probe finished")

	r.End(version)
	return version, nil
}

// run executes name in dir and returns stdout, or stderr on failure.
func run(ctx context.Context, dir, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("cmd", name).Strs("args", args).Msg("running probe step")

	if err := cmd.Run(); err != nil {
		return stderr.String(), err
	}
	return stdout.String(), nil
}

func detail(out string) string {
	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}
	return ": " + out
}
