package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	httptransport "cartulary/contexts/asset-custody/registry-service/transport/http"
)

// ModifyOptions holds flags for the modify command.
type ModifyOptions struct {
	*RootOptions
	Name        string
	PayloadSize int64
	Schema      string
	Tags        []string
}

// NewModifyCommand creates the modify command.
func NewModifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ModifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "modify <asset-id>",
		Short:         "Replace the revisable fields of an owned asset record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			caller, err := requireCaller(opts.RootOptions)
			if err != nil {
				return err
			}
			module, closer, err := openModule(opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			resp, err := module.Handler.ModifyAssetHandler(cmd.Context(), caller, assetID, httptransport.ModifyAssetRequest{
				Name:            opts.Name,
				PayloadSize:     opts.PayloadSize,
				AttributeSchema: opts.Schema,
				Tags:            opts.Tags,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "asset name (1-64 chars)")
	cmd.Flags().Int64Var(&opts.PayloadSize, "size", 0, "payload size in bytes")
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "attribute schema (1-128 chars)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "asset tag (repeatable, 1-10 tags)")

	return cmd
}
