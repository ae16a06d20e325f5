package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/app"
)

type resolveOptions struct {
	Batch bool
}

func newResolveCommand(service *serviceOptions) *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <rsID|file>",
		Short: "Resolve one identifier, or every identifier listed in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, service, opts, args[0])
		},
	}
	cmd.Flags().BoolVarP(&opts.Batch, "batch", "b", false, "Treat the input as an identifier list even if it looks like an identifier")
	_ = viper.BindPFlag("batch", cmd.Flags().Lookup("batch"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, service *serviceOptions, opts resolveOptions, input string) error {
	result, err := newAppService(cmd, service).Run(ctx, app.RunRequest{
		Input: input,
		Batch: resolveBool(cmd, opts.Batch, "batch", "batch"),
	})
	if err != nil {
		return err
	}
	if result.Mode == app.RunModeSingle {
		log.Ctx(ctx).Debug().
			Str("id", result.Single.Resolution.Requested.String()).
			Str("terminal", result.Single.Resolution.Terminal.String()).
			Int("lines", len(result.Single.Lines)).
			Msg("resolved")
	}
	return nil
}
