// pkg/env/store.go
package env

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultFile is where `mysqlprobe configure` publishes the environment
// unless told otherwise.
const DefaultFile = "build/mysql-env.json"

// Save publishes the environment as JSON for downstream build steps
func (e *Environment) Save(path string) error {
	if path == "" {
		path = DefaultFile
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating environment directory: %w", err)
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Load reads an environment published by Save
func Load(path string) (*Environment, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("environment file %s not found, run 'mysqlprobe configure' first", path)
		}
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	var e Environment
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parsing environment %s: %w", path, err)
	}

	return &e, nil
}

// Variables returns the published variables as name -> value. The include
// list is joined with the OS path list separator.
func (e *Environment) Variables() map[string]string {
	vars := map[string]string{
		"MYSQL_DIR":      e.Dir,
		"INCLUDES_MYSQL": strings.Join(e.Includes, string(os.PathListSeparator)),
		"MYSQL_USER":     e.User,
		"MYSQL_SOCKET":   e.Socket,
		"MYSQL_VERSION":  e.Version,
	}
	if e.Config != "" {
		vars["MYSQL_CONFIG"] = e.Config
	}
	if e.PluginDir != "" {
		vars["MYSQL_PLUGIN_DIR"] = e.PluginDir
	}
	if e.Client != "" {
		vars["MYSQL"] = e.Client
	}
	return vars
}

// Exports renders the environment in the given format: "json", "sh",
// "fish" or "cflags".
func (e *Environment) Exports(format string) (string, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "sh", "bash", "zsh":
		return e.render(func(k, v string) string {
			return fmt.Sprintf("export %s=%s\n", k, shellQuote(v))
		}), nil
	case "fish":
		return e.render(func(k, v string) string {
			return fmt.Sprintf("set -gx %s %s\n", k, shellQuote(v))
		}), nil
	case "cflags":
		return strings.Join(e.GetCompilerFlags().IncludeFlags, " ") + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, sh, fish, cflags)", format)
	}
}

func (e *Environment) render(line func(k, v string) string) string {
	vars := e.Variables()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(line(k, vars[k]))
	}
	return b.String()
}

// shellQuote wraps s in single quotes, escaping embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
