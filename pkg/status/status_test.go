package status

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporterPairs(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.Start("Checking for mysql install")
	r.End("/usr/local")
	r.Startf("Checking for %s", "mysql.h")
	r.Fail("not found")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"Checking for mysql install              : /usr/local",
		"Checking for mysql.h                    : not found",
	}
	if len(lines) != len(want) {
		t.Fatalf("output = %q", buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReporterStartWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.Start("Checking for mysql_config")
	if got, want := buf.String(), "Checking for mysql_config               : "; got != want {
		t.Fatalf("after Start output = %q, want %q", got, want)
	}

	r.End("/usr/bin/mysql_config")
	if got, want := buf.String(), "Checking for mysql_config               : /usr/bin/mysql_config\n"; got != want {
		t.Errorf("after End output = %q, want %q", got, want)
	}
}

func TestReporterInterrupted(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.Start("first")
	r.Start("second")
	r.Warn("skipped")
	r.End("stray")

	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "(interrupted)") {
		t.Errorf("open check not closed: %q", out)
	}
	if strings.Contains(out, "stray") {
		t.Errorf("End without Start printed: %q", out)
	}
}

func TestNilReporter(t *testing.T) {
	var r *Reporter
	r.Start("x")
	r.Startf("%d", 1)
	r.End("y")
	r.Fail("z")
	r.Warn("w")
}
