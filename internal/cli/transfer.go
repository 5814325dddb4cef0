package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	httptransport "cartulary/contexts/asset-custody/registry-service/transport/http"
)

// NewTransferCommand creates the transfer command.
func NewTransferCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "transfer <asset-id> <new-owner>",
		Short:         "Transfer ownership of an asset record",
		Args:          cobra.ExactArgs(2),
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

			resp, err := module.Handler.TransferAssetHandler(cmd.Context(), caller, assetID, httptransport.TransferAssetRequest{
				NewOwner: args[1],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
