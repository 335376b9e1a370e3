package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"manim-studio/internal/app"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s, %s)\n",
				app.AppName, app.AppVersion, runtime.GOOS, runtime.GOARCH, runtime.Version())
		},
	}
}
