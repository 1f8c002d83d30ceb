package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("MYSQLPROBE_PREFIX", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Prefix != DefaultPrefix {
		t.Errorf("Prefix = %s, want %s", cfg.Prefix, DefaultPrefix)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		Prefix: "/opt/db",
		CC:     "clang",
		MySQL: Options{
			Config:      HelperAuto,
			ConfigStyle: HelperStyleIncludes,
			Socket:      "/run/mysqld/mysqld.sock",
		},
	}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "config_style: includes") {
		t.Errorf("saved config does not use yaml keys:\n%s", data)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if got.Prefix != cfg.Prefix || got.CC != cfg.CC || got.MySQL != cfg.MySQL {
		t.Errorf("LoadConfig() = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfigPrefixFromEnv(t *testing.T) {
	t.Setenv("MYSQLPROBE_PREFIX", "/srv/mysql")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cc: gcc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prefix != "/srv/mysql" || cfg.CC != "gcc" {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mysql: [not, a, map]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of invalid yaml succeeded")
	}
}

func TestOptionsMerge(t *testing.T) {
	defaults := Options{Dir: "/opt/db", User: "builder", ConfigStyle: HelperStyleIncludes}
	got := Options{User: "admin"}.Merge(defaults)

	want := Options{Dir: "/opt/db", User: "admin", ConfigStyle: HelperStyleIncludes}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.UserOrDefault() != "root" || o.SocketOrDefault() != "/tmp/mysql.sock" {
		t.Errorf("defaults = %s, %s", o.UserOrDefault(), o.SocketOrDefault())
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() on empty options: %v", err)
	}
	o.ConfigStyle = "libs"
	if err := o.Validate(); err == nil {
		t.Error("Validate() accepted an unknown style")
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrInvalidOverride, "--mysql-dir", "/opt/db", "does not identify an accessible directory")
	if !errors.Is(err, ErrInvalidOverride) {
		t.Errorf("Errorf() does not wrap its kind")
	}
	want := "--mysql-dir /opt/db: invalid override: does not identify an accessible directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
