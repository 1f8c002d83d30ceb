package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arc-language/mysqlprobe/pkg/core"
)

func TestSource(t *testing.T) {
	src := Source("mysql.h", "MYSQL_SERVER_VERSION")
	for _, want := range []string{`#include "mysql.h"`, `printf("%s", MYSQL_SERVER_VERSION);`} {
		if !strings.Contains(src, want) {
			t.Errorf("Source() missing %q:\n%s", want, src)
		}
	}
}

// setup returns an include dir holding mysql.h and a fake compiler whose
// output program prints version.
func setup(t *testing.T, version string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler is a shell script")
	}

	inc := t.TempDir()
	if err := os.WriteFile(filepath.Join(inc, "mysql.h"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	cc := filepath.Join(t.TempDir(), "cc")
	script := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  [ "$1" = "-o" ] && { out="$2"; shift; }
  shift
done
printf '#!/bin/sh\necho "` + version + `"\n' > "$out"
chmod +x "$out"
`
	if err := os.WriteFile(cc, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return inc, cc
}

func TestVersion(t *testing.T) {
	inc, cc := setup(t, "5.7.44")

	p := &Prober{Compiler: cc, Header: "mysql.h", Macro: "MYSQL_SERVER_VERSION", TempDir: t.TempDir()}
	got, err := p.Version(context.Background(), []string{t.TempDir(), inc})
	if err != nil {
		t.Fatalf("Version() unexpected error: %v", err)
	}
	if got != "5.7.44" {
		t.Errorf("Version() = %q, want 5.7.44", got)
	}
}

func TestVersionMissingHeader(t *testing.T) {
	_, cc := setup(t, "5.7.44")

	p := &Prober{Compiler: cc, Header: "mysql.h", Macro: "MYSQL_SERVER_VERSION"}
	_, err := p.Version(context.Background(), []string{t.TempDir()})
	if !errors.Is(err, core.ErrProbeFailure) {
		t.Fatalf("Version() error = %v, want ErrProbeFailure", err)
	}
}

func TestVersionCompileFailure(t *testing.T) {
	inc, _ := setup(t, "")

	cc := filepath.Join(t.TempDir(), "cc")
	if err := os.WriteFile(cc, []byte("#!/bin/sh\necho 'probe.c:2: error' >&2\nexit 1\n"), 0755); err != nil {
		t.Fatal(err)
	}

	p := &Prober{Compiler: cc, Header: "mysql.h", Macro: "MYSQL_SERVER_VERSION"}
	_, err := p.Version(context.Background(), []string{inc})
	if !errors.Is(err, core.ErrProbeFailure) {
		t.Fatalf("Version() error = %v, want ErrProbeFailure", err)
	}
	if !strings.Contains(err.Error(), "probe.c:2: error") {
		t.Errorf("error %q does not carry compiler output", err)
	}
}
