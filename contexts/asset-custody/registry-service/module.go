package registryservice

import (
	"log/slog"

	httpadapter "cartulary/contexts/asset-custody/registry-service/adapters/http"
	"cartulary/contexts/asset-custody/registry-service/adapters/memory"
	"cartulary/contexts/asset-custody/registry-service/application"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository           ports.AssetRepository
	Permissions          ports.PermissionStore
	Outbox               ports.OutboxWriter
	Clock                ports.LogicalClock
	IDGenerator          ports.IDGenerator
	Authority            valueobjects.Principal
	DisableEventEmission bool
	Logger               *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:                 deps.Repository,
		Permissions:          deps.Permissions,
		Outbox:               deps.Outbox,
		Clock:                deps.Clock,
		IDGen:                deps.IDGenerator,
		Authority:            deps.Authority,
		DisableEventEmission: deps.DisableEventEmission,
		Logger:               deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(authority valueobjects.Principal, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Permissions: store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Authority:   authority,
		Logger:      logger,
	})
	module.Store = store
	return module
}
