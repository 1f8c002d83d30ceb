// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe/pkg/env"
)

var (
	envFile   string
	envFormat string
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the published MySQL environment",
	Long: `Print the environment written by configure.

Formats:
  json     the file as written (default)
  sh       export statements for bash/zsh: eval "$(mysqlprobe env --format=sh)"
  fish     set -gx statements: mysqlprobe env --format=fish | source
  cflags   -I flags for the include directories`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVar(&envFile, "env", env.DefaultFile, "environment written by configure")
	envCmd.Flags().StringVar(&envFormat, "format", "json", "output format: json, sh, fish, cflags")
}

func runEnv(cmd *cobra.Command, args []string) error {
	e, err := env.Load(envFile)
	if err != nil {
		return err
	}

	out, err := e.Exports(envFormat)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
