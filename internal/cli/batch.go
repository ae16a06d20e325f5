package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/app"
)

func newBatchCommand(service *serviceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Resolve every identifier in a newline-delimited list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newAppService(cmd, service).Batch(cmd.Context(), app.BatchRequest{ListPath: args[0]})
			return err
		},
	}
}
