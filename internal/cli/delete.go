package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <asset-id>",
		Short:         "Delete an owned asset record (the id is never reused)",
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

			resp, err := module.Handler.DeleteAssetHandler(cmd.Context(), caller, assetID)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
