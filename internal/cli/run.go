// internal/cli/run.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe"
	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/recipe"
)

var (
	runEnvFile string
	runRecipe  string
)

var runCmd = &cobra.Command{
	Use:   "run [script...]",
	Short: "Run SQL scripts against the configured server",
	Long: `Run each script through the mysql client resolved by configure. The
handler is picked by extension (.sql, .sql.xz). Scripts always run; two
runs of the same script never overlap.

Examples:
  mysqlprobe run db/schema.sql
  mysqlprobe run --recipe=mysqlprobe.toml
  mysqlprobe run --mysql-socket=/run/mysqld/mysqld.sock seed.sql.xz`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runEnvFile, "env", env.DefaultFile, "environment written by configure")
	runCmd.Flags().StringVar(&runRecipe, "recipe", "", "build recipe whose [scripts] run after the arguments")
}

func runRun(cmd *cobra.Command, args []string) error {
	scripts := append([]string{}, args...)
	if runRecipe != "" {
		r, err := recipe.Load(runRecipe)
		if err != nil {
			return err
		}
		scripts = append(scripts, r.Scripts...)
	}
	if len(scripts) == 0 {
		return fmt.Errorf("no scripts given")
	}

	e, err := loadEnvironment(runEnvFile)
	if err != nil {
		return err
	}

	c, err := newConfigurator(cmd)
	if err != nil {
		return err
	}

	runOpts := &mysqlprobe.RunOptions{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	for _, script := range scripts {
		if err := c.RunScript(cmd.Context(), e, script, runOpts); err != nil {
			return err
		}
	}
	return nil
}

// loadEnvironment reads the published environment. --mysql-user and
// --mysql-socket given on this command line replace the published values.
func loadEnvironment(path string) (*mysqlprobe.Environment, error) {
	e, err := env.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.User != "" {
		e.User = opts.User
	}
	if opts.Socket != "" {
		e.Socket = opts.Socket
	}
	return e, nil
}
