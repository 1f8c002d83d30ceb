// internal/cli/configure.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe"
	"github.com/arc-language/mysqlprobe/pkg/constraint"
	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/recipe"
)

var (
	configureRequire []string
	atLeastVersion   string
	exactVersion     string
	maxVersion       string
	configureRecipe  string
	configureOut     string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Locate MySQL, check its version and publish the environment",
	Long: `Locate the MySQL install, read MYSQL_SERVER_VERSION from mysql.h, check it
against the requested versions and write the environment file.

Version flags replace any [constraints] from the recipe. Without flags the
recipe's constraints are checked in the order they are written.

Examples:
  mysqlprobe configure
  mysqlprobe configure --mysql-dir=/opt/mysql --atleast-version=5.7
  mysqlprobe configure --mysql-config=auto --mysql-config-style=includes
  mysqlprobe configure --require=plugin,client --recipe=mysqlprobe.toml`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	f := configureCmd.Flags()
	f.StringSliceVar(&configureRequire, "require", nil, "optional parts to resolve: plugin, client")
	f.StringVar(&atLeastVersion, "atleast-version", "", "require server version >= V")
	f.StringVar(&exactVersion, "exact-version", "", "require server version == V")
	f.StringVar(&maxVersion, "max-version", "", "require server version <= V")
	f.StringVar(&configureRecipe, "recipe", "", "build recipe (TOML) supplying constraints and required parts")
	f.StringVar(&configureOut, "out", env.DefaultFile, "where to write the environment")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	features, err := parseRequire(configureRequire)
	if err != nil {
		return err
	}

	constraints := constraint.FromValues(atLeastVersion, exactVersion, maxVersion)

	if configureRecipe != "" {
		r, err := recipe.Load(configureRecipe)
		if err != nil {
			return err
		}
		if len(constraints) == 0 {
			constraints = r.Constraints
		}
		if len(r.Scripts) > 0 {
			features.Client = true
		}
		if len(r.Plugins) > 0 {
			features.Plugins = true
		}
	}

	c, err := newConfigurator(cmd)
	if err != nil {
		return err
	}

	e, err := c.CheckMySQL(cmd.Context(), features, constraints)
	if err != nil {
		return err
	}

	if err := e.Save(configureOut); err != nil {
		return fmt.Errorf("publishing environment: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configureOut)
	return nil
}

func parseRequire(parts []string) (mysqlprobe.Features, error) {
	var features mysqlprobe.Features
	for _, p := range parts {
		switch p {
		case "plugin", "plugins":
			features.Plugins = true
		case "client":
			features.Client = true
		default:
			return features, fmt.Errorf("unknown --require value %q (want plugin or client)", p)
		}
	}
	return features, nil
}
