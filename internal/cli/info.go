// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/mysqlprobe/pkg/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the detected build toolchain",
	Long:  `Display the platform, the C compilers found on PATH, the compiler the version probe would use and whether mysql_config is on PATH.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	// Detect platform
	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Available compilers:\n")
	for _, c := range plat.Available {
		marker := " "
		if c == plat.Preferred {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, c)
	}
	if plat.Preferred != "" {
		fmt.Fprintf(out, "\n* = preferred compiler\n")
	}

	if compiler, err := platform.ResolveCompiler(plat, config.CC); err == nil {
		fmt.Fprintf(out, "\nProbe compiler: %s\n", compiler)
	} else {
		fmt.Fprintf(out, "\nProbe compiler: none (%v)\n", err)
	}

	helper := plat.Helper
	if helper == "" {
		helper = "not found"
	}
	fmt.Fprintf(out, "%s: %s\n", platform.HelperName, helper)
	fmt.Fprintf(out, "Install prefix: %s\n", config.Prefix)

	return nil
}
