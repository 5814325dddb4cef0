package cli

import (
	"github.com/spf13/cobra"
)

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "metrics",
		Short:         "Show the registration counter and the system authority",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, closer, err := openModule(rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			resp, err := module.Handler.GetMetricsHandler(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
