// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe"
	"github.com/arc-language/mysqlprobe/pkg/core"
	"github.com/arc-language/mysqlprobe/pkg/status"
)

var (
	cfgFile string
	prefix  string
	cc      string
	debug   bool
	opts    core.Options
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mysqlprobe",
	Short: "Locate and validate a MySQL installation for a build",
	Long: `mysqlprobe - MySQL build configuration

Finds the MySQL headers, plugin directory and client below an install
prefix or through mysql_config, reads the server version from mysql.h and
checks it against the versions a build accepts. The result is published
as a JSON environment for later build steps, which can also run SQL
scripts and install server plugins through it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Run executes the root command and returns a process exit code
func Run(ctx context.Context) int {
	if err := Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = mysqlprobe.VersionString()

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mysqlprobe/config.yaml)")
	pf.StringVar(&prefix, "prefix", "", "install prefix, the base directory when --mysql-dir is not given")
	pf.StringVar(&cc, "cc", "", "C compiler for the version probe (default $CC, then cc, gcc, clang)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")

	// Discovery overrides
	pf.StringVar(&opts.Dir, "mysql-dir", "", "MySQL install directory")
	pf.StringVar(&opts.Config, "mysql-config", "", "path of mysql_config, or 'auto' to search PATH")
	pf.StringVar((*string)(&opts.ConfigStyle), "mysql-config-style", "", "how to ask mysql_config for headers: include or includes")
	pf.StringVar(&opts.Includes, "mysql-includes", "", "MySQL header directory")
	pf.StringVar(&opts.PluginDir, "mysql-plugin-dir", "", "MySQL server plugin directory")
	pf.StringVar(&opts.Client, "mysql-client", "", "mysql client executable")
	pf.StringVar(&opts.User, "mysql-user", "", "admin user for scripts (default root)")
	pf.StringVar(&opts.Socket, "mysql-socket", "", "server socket for scripts (default /tmp/mysql.sock)")

	// Add commands
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(installPluginCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if prefix != "" {
		config.Prefix = prefix
	}
	if cc != "" {
		config.CC = cc
	}
	if debug {
		config.Debug = true
	}

	setupLogging(config.Debug)
}

// newConfigurator builds a Configurator from the loaded config and flags.
func newConfigurator(cmd *cobra.Command) (*mysqlprobe.Configurator, error) {
	return mysqlprobe.New(config, opts, status.New(cmd.OutOrStdout()))
}
