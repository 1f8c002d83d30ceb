package registry

import (
	"context"
	"reflect"
	"testing"

	"github.com/arc-language/mysqlprobe/pkg/core"
)

type stubHandler struct {
	name string
	exts []string
}

func (s stubHandler) Name() string         { return s.name }
func (s stubHandler) Extensions() []string { return s.exts }
func (s stubHandler) Run(context.Context, core.Connection, string, *core.RunOptions) error {
	return nil
}

func TestLookupLongestSuffix(t *testing.T) {
	r := New()
	if err := r.Register(stubHandler{name: "sql", exts: []string{".sql"}}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(stubHandler{name: "xz", exts: []string{"sql.xz"}}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"schema.sql", "sql"},
		{"db/SEED.SQL", "sql"},
		{"seed.sql.xz", "xz"},
	}
	for _, tt := range tests {
		h, err := r.Lookup(tt.path)
		if err != nil {
			t.Errorf("Lookup(%s) unexpected error: %v", tt.path, err)
			continue
		}
		if h.Name() != tt.want {
			t.Errorf("Lookup(%s) = %s, want %s", tt.path, h.Name(), tt.want)
		}
	}

	if _, err := r.Lookup("notes.txt"); err == nil {
		t.Error("Lookup(notes.txt) succeeded, want error")
	}
	if _, err := r.Lookup("archive.xz"); err == nil {
		t.Error("Lookup(archive.xz) succeeded, want error")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	if err := r.Register(stubHandler{name: "a", exts: []string{".sql"}}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(stubHandler{name: "b", exts: []string{".SQL"}}); err == nil {
		t.Fatal("Register() of duplicate extension succeeded")
	}
	if h, _ := r.Get("sql"); h.Name() != "a" {
		t.Errorf("Get(sql) = %s, want a", h.Name())
	}
}

func TestAvailable(t *testing.T) {
	r := New()
	_ = r.Register(stubHandler{name: "xz", exts: []string{".sql.xz"}})
	_ = r.Register(stubHandler{name: "sql", exts: []string{".sql"}})

	if got, want := r.Available(), []string{".sql", ".sql.xz"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}
