package recipe

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arc-language/mysqlprobe/pkg/constraint"
)

func TestParseKeepsConstraintOrder(t *testing.T) {
	r, err := Parse(`
[constraints]
max_version = "8.0"
atleast_version = "5.7"

[scripts]
files = ["schema.sql", "seed.sql.xz"]
`)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	want := constraint.New(constraint.MaxVersion("8.0"), constraint.MinVersion("5.7"))
	if !reflect.DeepEqual(r.Constraints, want) {
		t.Errorf("Constraints = %v, want %v", r.Constraints, want)
	}
	if !reflect.DeepEqual(r.Scripts, []string{"schema.sql", "seed.sql.xz"}) {
		t.Errorf("Scripts = %v", r.Scripts)
	}
	if len(r.Plugins) != 0 {
		t.Errorf("Plugins = %v, want none", r.Plugins)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown constraint", "[constraints]\nmin_version = \"5.7\"\n", "min_version"},
		{"unknown table", "[server]\nport = 3306\n", "server"},
		{"wrong type", "[constraints]\natleast_version = 5\n", "atleast_version"},
		{"syntax", "[constraints\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	data := `
[constraints]
exact_version = "8.0.34"

[scripts]
files = ["db/schema.sql", "/abs/seed.sql"]

[plugins]
files = ["build/udf_example.so"]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if want := []string{filepath.Join(dir, "db", "schema.sql"), "/abs/seed.sql"}; !reflect.DeepEqual(r.Scripts, want) {
		t.Errorf("Scripts = %v, want %v", r.Scripts, want)
	}
	if want := []string{filepath.Join(dir, "build", "udf_example.so")}; !reflect.DeepEqual(r.Plugins, want) {
		t.Errorf("Plugins = %v, want %v", r.Plugins, want)
	}
	if len(r.Constraints) != 1 || r.Constraints[0].Kind != constraint.Exact {
		t.Errorf("Constraints = %v", r.Constraints)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
