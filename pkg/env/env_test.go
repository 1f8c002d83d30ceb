package env

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLayoutResolve(t *testing.T) {
	l := GetLayout("").Resolve("/opt/db")

	want := Layout{
		Includes:  filepath.Join("/opt/db", "include", "mysql"),
		PluginDir: filepath.Join("/opt/db", "lib", "mysql", "plugin"),
		Client:    filepath.Join("/opt/db", "bin", "mysql"),
		Header:    "mysql.h",
	}
	if l != want {
		t.Errorf("Resolve() = %+v, want %+v", l, want)
	}
}

func testEnvironment() *Environment {
	return &Environment{
		Dir:       "/opt/db",
		Includes:  []string{"/opt/db/include/mysql", "/opt/extra"},
		PluginDir: "/opt/db/lib/mysql/plugin",
		Client:    "/opt/db/bin/mysql",
		User:      "root",
		Socket:    "/tmp/mysql.sock",
		Version:   "8.0.34",
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "mysql-env.json")
	e := testEnvironment()

	if err := e.Save(path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	for _, key := range []string{`"MYSQL_DIR"`, `"INCLUDES_MYSQL"`, `"MYSQL_PLUGIN_DIR"`, `"MYSQL"`, `"MYSQL_VERSION"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved environment missing %s:\n%s", key, data)
		}
	}
	if strings.Contains(string(data), "MYSQL_CONFIG") {
		t.Errorf("empty MYSQL_CONFIG was written:\n%s", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, e) {
		t.Errorf("Load() = %+v, want %+v", got, e)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.Contains(err.Error(), "configure") {
		t.Errorf("Load() of a missing file = %v", err)
	}
}

func TestExports(t *testing.T) {
	e := testEnvironment()
	e.Socket = "/tmp/it's.sock"

	sh, err := e.Exports("sh")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"export MYSQL='/opt/db/bin/mysql'\n",
		"export MYSQL_SOCKET='/tmp/it'\\''s.sock'\n",
		"export INCLUDES_MYSQL='/opt/db/include/mysql" + string(os.PathListSeparator) + "/opt/extra'\n",
	} {
		if !strings.Contains(sh, want) {
			t.Errorf("sh exports missing %q:\n%s", want, sh)
		}
	}
	if strings.Contains(sh, "MYSQL_CONFIG") {
		t.Errorf("sh exports include an unset MYSQL_CONFIG:\n%s", sh)
	}

	fish, err := e.Exports("fish")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fish, "set -gx MYSQL_VERSION '8.0.34'\n") {
		t.Errorf("fish exports:\n%s", fish)
	}

	cflags, err := e.Exports("cflags")
	if err != nil {
		t.Fatal(err)
	}
	if cflags != "-I/opt/db/include/mysql -I/opt/extra\n" {
		t.Errorf("cflags = %q", cflags)
	}

	if _, err := e.Exports("xml"); err == nil {
		t.Error("Exports(xml) succeeded")
	}
}

func TestFindHeader(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "mysql.h"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	e := &Environment{Includes: []string{first, second}}

	if got, want := e.FindHeader("mysql.h"), filepath.Join(second, "mysql.h"); got != want {
		t.Errorf("FindHeader() = %q, want %q", got, want)
	}
	if got := e.FindHeader("errmsg.h"); got != "" {
		t.Errorf("FindHeader(errmsg.h) = %q, want empty", got)
	}
}

func TestPluginPath(t *testing.T) {
	e := testEnvironment()
	if got := e.PluginPath("build/udf.so"); got != filepath.Join(e.PluginDir, "udf.so") {
		t.Errorf("PluginPath() = %s", got)
	}
	if got := (&Environment{}).PluginPath("udf.so"); got != "" {
		t.Errorf("PluginPath() without a plugin dir = %s", got)
	}
}
