package cli

import (
	"github.com/spf13/cobra"

	httptransport "cartulary/contexts/asset-custody/registry-service/transport/http"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Name        string
	PayloadSize int64
	Schema      string
	Tags        []string
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new asset record owned by the caller",
		Example: `  registryctl register --caller alice --name report.pdf --size 2048 \
    --schema application/pdf --tag finance --tag q3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caller, err := requireCaller(opts.RootOptions)
			if err != nil {
				return err
			}
			module, closer, err := openModule(opts.RootOptions)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			resp, err := module.Handler.RegisterAssetHandler(cmd.Context(), caller, httptransport.RegisterAssetRequest{
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
