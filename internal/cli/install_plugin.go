// internal/cli/install_plugin.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/recipe"
)

var (
	installEnvFile string
	installRecipe  string
)

var installPluginCmd = &cobra.Command{
	Use:   "install-plugin [file...]",
	Short: "Install server plugins into the MySQL plugin directory",
	Long: `Copy built plugin libraries into the plugin directory resolved by
'mysqlprobe configure --require=plugin'.

Examples:
  mysqlprobe install-plugin build/udf_example.so
  mysqlprobe install-plugin --recipe=mysqlprobe.toml`,
	RunE: runInstallPlugin,
}

func init() {
	installPluginCmd.Flags().StringVar(&installEnvFile, "env", env.DefaultFile, "environment written by configure")
	installPluginCmd.Flags().StringVar(&installRecipe, "recipe", "", "build recipe whose [plugins] are installed after the arguments")
}

func runInstallPlugin(cmd *cobra.Command, args []string) error {
	files := append([]string{}, args...)
	if installRecipe != "" {
		r, err := recipe.Load(installRecipe)
		if err != nil {
			return err
		}
		files = append(files, r.Plugins...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no plugin files given")
	}

	e, err := env.Load(installEnvFile)
	if err != nil {
		return err
	}

	c, err := newConfigurator(cmd)
	if err != nil {
		return err
	}

	installed, err := c.InstallPlugins(e, files)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %d plugin(s) into %s\n", len(installed), e.PluginDir)
	return nil
}
