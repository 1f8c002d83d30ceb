// pkg/env/types.go
package env

import "github.com/arc-language/mysqlprobe/pkg/core"

// Layout defines where files are located under an engine install directory
type Layout struct {
	Includes  string // Relative path to the header directory
	PluginDir string // Relative path to the server plugin directory
	Client    string // Relative path to the client executable
	Header    string // Primary header the version probe includes
}

// Environment is the resolved MySQL installation handed to downstream
// build steps. It is built once per configuration run and not modified
// afterwards.
type Environment struct {
	Dir       string   `json:"MYSQL_DIR"`                  // Base directory (--mysql-dir or prefix)
	Config    string   `json:"MYSQL_CONFIG,omitempty"`     // Config helper used, if any
	Includes  []string `json:"INCLUDES_MYSQL"`             // Header directories
	PluginDir string   `json:"MYSQL_PLUGIN_DIR,omitempty"` // Plugin directory, if resolved
	Client    string   `json:"MYSQL,omitempty"`            // Client executable, if resolved
	User      string   `json:"MYSQL_USER"`                 // Admin user name
	Socket    string   `json:"MYSQL_SOCKET"`               // Connection socket path
	Version   string   `json:"MYSQL_VERSION"`              // Detected MYSQL_SERVER_VERSION
}

// CompilerFlags holds compiler flags derived from an Environment
type CompilerFlags struct {
	IncludeFlags []string // -I flags
}

// Connection returns the parameters a script task needs to reach the
// server.
func (e *Environment) Connection() core.Connection {
	return core.Connection{
		Client: e.Client,
		Socket: e.Socket,
		User:   e.User,
	}
}
