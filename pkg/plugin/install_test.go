package plugin

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arc-language/mysqlprobe/pkg/env"
)

func TestInstall(t *testing.T) {
	src := filepath.Join(t.TempDir(), "udf_example.so")
	if err := os.WriteFile(src, []byte("\x7fELF"), 0644); err != nil {
		t.Fatal(err)
	}
	e := &env.Environment{PluginDir: t.TempDir()}

	got, err := Install(e, []string{src}, nil)
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}
	dst := filepath.Join(e.PluginDir, "udf_example.so")
	if len(got) != 1 || got[0] != dst {
		t.Fatalf("Install() = %v, want [%s]", got, dst)
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "\x7fELF" {
		t.Errorf("installed contents = %q, %v", data, err)
	}
	if runtime.GOOS != "windows" {
		info, _ := os.Stat(dst)
		if info.Mode().Perm() != Mode {
			t.Errorf("mode = %v, want %v", info.Mode().Perm(), Mode)
		}
	}

	entries, _ := os.ReadDir(e.PluginDir)
	if len(entries) != 1 {
		t.Errorf("plugin dir has %d entries, want 1", len(entries))
	}
}

func TestInstallErrors(t *testing.T) {
	if _, err := Install(&env.Environment{}, []string{"x.so"}, nil); err == nil {
		t.Error("Install() without a plugin dir succeeded")
	}

	e := &env.Environment{PluginDir: t.TempDir()}
	if _, err := Install(e, []string{filepath.Join(t.TempDir(), "missing.so")}, nil); err == nil {
		t.Error("Install() of a missing file succeeded")
	}
	if _, err := Install(e, []string{t.TempDir()}, nil); err == nil {
		t.Error("Install() of a directory succeeded")
	}
}
