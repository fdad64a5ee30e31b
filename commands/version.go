package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VERSION is the released version, overridable at build time with
// -ldflags "-X .../commands.VERSION=v1.2.3".
var VERSION = "v0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", APP, VERSION)
		},
	}
}
