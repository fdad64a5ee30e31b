// Package commands wires the CLI. The root command runs the upload
// pipeline directly so a scheduler can invoke the binary with no
// arguments.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arledger/aging-sheets/logger"
)

const APP = "aging-sheets"

// NewRootCommand creates the root CLI command with all subcommands
// registered. Running it with no subcommand performs the upload.
func NewRootCommand() *cobra.Command {
	var debug bool

	opts := uploadOptions{}
	log := zerolog.Nop()

	root := &cobra.Command{
		Use:           APP,
		Short:         "Publishes the newest QuickBooks AR aging CSV to a Google Sheets worksheet",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), opts, log)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging information")
	addUploadFlags(root, &opts)

	root.AddCommand(newUploadCommand(&opts, &log))
	root.AddCommand(newVersionCommand())

	return root
}
