package core

import "fmt"

// Default connection settings used when the caller supplies none.
const (
	DefaultUser   = "root"
	DefaultSocket = "/tmp/mysql.sock"
)

// HelperAuto asks discovery to look the config helper up on PATH instead
// of taking an explicit path.
const HelperAuto = "auto"

// HelperStyle selects how the config helper is asked for include paths.
type HelperStyle string

const (
	// HelperStyleInclude runs `<helper> --include` and takes the trimmed
	// output verbatim as the include directory.
	HelperStyleInclude HelperStyle = "include"

	// HelperStyleIncludes runs `<helper> --includes` and splits the output
	// into one or more directories, dropping any -I prefix.
	HelperStyleIncludes HelperStyle = "includes"
)

// Valid reports whether s is a known style. The empty style is valid and
// means HelperStyleInclude.
func (s HelperStyle) Valid() bool {
	switch s {
	case "", HelperStyleInclude, HelperStyleIncludes:
		return true
	}
	return false
}

// Options are the user supplied overrides for MySQL discovery. Every field
// is optional; an empty field means "fall back".
type Options struct {
	Dir         string      `yaml:"dir"`          // --mysql-dir
	Config      string      `yaml:"config"`       // --mysql-config
	ConfigStyle HelperStyle `yaml:"config_style"` // --mysql-config-style
	Includes    string      `yaml:"includes"`     // --mysql-includes
	PluginDir   string      `yaml:"plugin_dir"`   // --mysql-plugin-dir
	Client      string      `yaml:"client"`       // --mysql-client
	User        string      `yaml:"user"`         // --mysql-user
	Socket      string      `yaml:"socket"`       // --mysql-socket
}

// Merge returns o with every empty field taken from defaults.
func (o Options) Merge(defaults Options) Options {
	pick := func(v, d string) string {
		if v != "" {
			return v
		}
		return d
	}
	o.Dir = pick(o.Dir, defaults.Dir)
	o.Config = pick(o.Config, defaults.Config)
	o.ConfigStyle = HelperStyle(pick(string(o.ConfigStyle), string(defaults.ConfigStyle)))
	o.Includes = pick(o.Includes, defaults.Includes)
	o.PluginDir = pick(o.PluginDir, defaults.PluginDir)
	o.Client = pick(o.Client, defaults.Client)
	o.User = pick(o.User, defaults.User)
	o.Socket = pick(o.Socket, defaults.Socket)
	return o
}

// Validate checks the fields that have a closed set of values.
func (o Options) Validate() error {
	if !o.ConfigStyle.Valid() {
		return fmt.Errorf("unknown mysql config style %q (want %q or %q)",
			o.ConfigStyle, HelperStyleInclude, HelperStyleIncludes)
	}
	return nil
}

// UserOrDefault returns the admin user name, defaulting to root.
func (o Options) UserOrDefault() string {
	if o.User == "" {
		return DefaultUser
	}
	return o.User
}

// SocketOrDefault returns the connection socket, defaulting to
// /tmp/mysql.sock.
func (o Options) SocketOrDefault() string {
	if o.Socket == "" {
		return DefaultSocket
	}
	return o.Socket
}
