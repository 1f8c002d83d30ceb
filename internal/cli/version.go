// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mysqlprobe version %s\n", mysqlprobe.VersionString())
		fmt.Fprintln(out, "MySQL build configuration")
		fmt.Fprintln(out, "https://github.com/arc-language/mysqlprobe")
	},
}
