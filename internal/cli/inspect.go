package cli

import (
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/app"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

func newInspectCommand(service *serviceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <rsID>",
		Short: "Show the merge chain and records of one identifier as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolution, err := newAppService(cmd, service).Inspect(cmd.Context(), app.InspectRequest{ID: args[0]})
			if err != nil {
				return err
			}
			return writeResolutionYAML(cmd.OutOrStdout(), resolution)
		},
	}
}

func writeResolutionYAML(out io.Writer, resolution types.Resolution) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(resolution); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resolution").
			WithCause(err)
	}
	return encoder.Close()
}
