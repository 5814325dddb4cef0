// Package cli implements the registryctl command tree. Commands operate on a
// local SQLite-backed registry, wiring the same service module the API uses.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	registryservice "cartulary/contexts/asset-custody/registry-service"
	"cartulary/contexts/asset-custody/registry-service/adapters/sqlite"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	DBPath    string
	Caller    string
	Authority string
}

// NewRootCommand creates the root command for registryctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "registryctl",
		Short:         "Single-authority digital asset registry",
		Long:          "registryctl manages a local asset registry: register, modify, transfer, delete and query asset records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "cartulary.db", "path to the registry database file")
	cmd.PersistentFlags().StringVar(&opts.Caller, "caller", "", "caller principal identity")
	cmd.PersistentFlags().StringVar(&opts.Authority, "authority", "authority", "system authority identity")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewModifyCommand(opts))
	cmd.AddCommand(NewTransferCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewOwnerCommand(opts))
	cmd.AddCommand(NewAuthzCommand(opts))
	cmd.AddCommand(NewMetricsCommand(opts))

	return cmd
}

// openModule opens the local store and wires the registry module around it.
// The returned closer must be called when the command finishes.
func openModule(opts *RootOptions) (registryservice.Module, func() error, error) {
	authority, err := valueobjects.NewPrincipal(opts.Authority)
	if err != nil {
		return registryservice.Module{}, nil, fmt.Errorf("invalid --authority: %w", err)
	}

	store, err := sqlite.Open(opts.DBPath)
	if err != nil {
		return registryservice.Module{}, nil, err
	}

	module := registryservice.NewModule(registryservice.Dependencies{
		Repository:  store,
		Permissions: store,
		Clock:       &sqlite.MonotonicClock{},
		Authority:   authority,
	})
	return module, store.Close, nil
}

func requireCaller(opts *RootOptions) (string, error) {
	if opts.Caller == "" {
		return "", fmt.Errorf("--caller is required")
	}
	return opts.Caller, nil
}
