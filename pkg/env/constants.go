// pkg/env/constants.go
package env

import (
	"path/filepath"
)

// Engine is the only database engine mysqlprobe knows how to locate.
const Engine = "mysql"

// VersionMacro is the header constant the probe program prints.
const VersionMacro = "MYSQL_SERVER_VERSION"

// GetLayout returns the conventional directory structure below an
// install directory for the named engine. These are RELATIVE paths.
func GetLayout(engine string) Layout {
	if engine == "" {
		engine = Engine
	}
	return Layout{
		// <base>/include/mysql/mysql.h
		Includes: filepath.Join("include", engine),
		// <base>/lib/mysql/plugin/*.so
		PluginDir: filepath.Join("lib", engine, "plugin"),
		// <base>/bin/mysql
		Client: filepath.Join("bin", engine),
		Header: engine + ".h",
	}
}

// Resolve joins the layout onto base and returns absolute-style paths for
// each entry.
func (l Layout) Resolve(base string) Layout {
	return Layout{
		Includes:  filepath.Join(base, l.Includes),
		PluginDir: filepath.Join(base, l.PluginDir),
		Client:    filepath.Join(base, l.Client),
		Header:    l.Header,
	}
}
