package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewOwnerCommand creates the owner command.
func NewOwnerCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "owner <asset-id>",
		Short:         "Look up the current owner of an asset record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			module, closer, err := openModule(rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			resp, err := module.Handler.GetOwnerHandler(cmd.Context(), assetID)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
