package env

/*
Package env describes a resolved MySQL installation.

It handles:
  - The conventional layout below an install directory
    (include/mysql, lib/mysql/plugin, bin/mysql)
  - The Environment record produced by discovery
  - Generating compiler flags from the include directories
  - Publishing the environment for downstream build steps

Basic Usage:

    import "github.com/arc-language/mysqlprobe/pkg/env"

    layout := env.GetLayout(env.Engine).Resolve("/opt/db")
    fmt.Println(layout.Includes) // /opt/db/include/mysql

    e, err := env.Load("build/mysql-env.json")
    if err != nil {
        return err
    }

    flags := e.GetCompilerFlags()
    for _, flag := range flags.IncludeFlags {
        fmt.Println(flag) // -I/opt/db/include/mysql
    }

Published Variables:

The JSON file written by Save uses the variable names build recipes
expect: MYSQL_DIR, MYSQL_CONFIG, INCLUDES_MYSQL, MYSQL_PLUGIN_DIR, MYSQL,
MYSQL_USER, MYSQL_SOCKET and MYSQL_VERSION. Exports renders the same set
as sh or fish export statements.
*/
