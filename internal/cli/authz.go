package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewAuthzCommand creates the authz command.
func NewAuthzCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "authz <asset-id> <entity>",
		Short:         "Report explicit grant, ownership and effective access for an entity",
		Args:          cobra.ExactArgs(2),
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

			resp, err := module.Handler.GetAuthorizationHandler(cmd.Context(), assetID, args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
