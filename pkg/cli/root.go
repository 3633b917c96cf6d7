package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifedash",
		Short: "Personal productivity dashboard",
		Long:  "Tracks goals, daily health metrics, journals and a local community feed behind a JSON API.",
	}
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewExportCommand())
	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
