// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List script extensions run can handle",
	Long:  `List every script extension registered with the run command and its handler.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newConfigurator(cmd)
	if err != nil {
		return err
	}

	tasks := c.Tasks()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Registered script handlers:\n")
	for _, ext := range tasks.Available() {
		h, err := tasks.Get(ext)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s %s\n", ext, h.Name())
	}

	return nil
}
