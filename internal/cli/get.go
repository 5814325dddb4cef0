package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <asset-id>",
		Short:         "Fetch the full asset record (requires ownership or an explicit grant)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			caller, err := requireCaller(rootOpts)
			if err != nil {
				return err
			}
			module, closer, err := openModule(rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			resp, err := module.Handler.GetRecordHandler(cmd.Context(), caller, assetID)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
