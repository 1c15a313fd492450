// Package app is the composition root: it picks storage, lock and broker
// backends from configuration and wires every domain together.
package app

import (
	"fmt"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/config"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invH "github.com/fekuna/omnipos-kit-inventory/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/inventory/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	issH "github.com/fekuna/omnipos-kit-inventory/internal/issuance/handler"
	issListenerPkg "github.com/fekuna/omnipos-kit-inventory/internal/issuance/listener"
	issRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/issuance/repository"
	issUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/issuance/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/item"
	itemH "github.com/fekuna/omnipos-kit-inventory/internal/item/handler"
	itemRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/item/repository"
	itemUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/item/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	locH "github.com/fekuna/omnipos-kit-inventory/internal/location/handler"
	locRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/location/repository"
	locUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/location/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/metrics"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder"
	reoH "github.com/fekuna/omnipos-kit-inventory/internal/reorder/handler"
	reoRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/reorder/repository"
	reoUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/reorder/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/threshold"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer"
	trH "github.com/fekuna/omnipos-kit-inventory/internal/transfer/handler"
	trRepoPkg "github.com/fekuna/omnipos-kit-inventory/internal/transfer/repository"
	trUCPkg "github.com/fekuna/omnipos-kit-inventory/internal/transfer/usecase"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
)

// Deps are the connected backends. DB is only read for the postgres store
// driver; a nil Publisher drops events.
type Deps struct {
	DB         *sqlx.DB
	Locker     lock.Locker
	Publisher  broker.Publisher
	Registerer prometheus.Registerer
}

type Container struct {
	Items     item.UseCase
	Locations location.UseCase
	Ledger    inventory.UseCase
	Transfers transfer.UseCase
	Issuances issuance.UseCase
	Reorders  reorder.UseCase
	Monitor   *threshold.Monitor
	Metrics   *metrics.Metrics

	logger logger.ZapLogger
}

type repositories struct {
	items     item.Repository
	locations location.Repository
	ledger    inventory.Repository
	transfers transfer.Repository
	issuances issuance.Repository
	reorders  reorder.Repository
}

func newRepositories(driver string, db *sqlx.DB) (*repositories, error) {
	switch driver {
	case config.StoreDriverMemory:
		return &repositories{
			items:     itemRepoPkg.NewMemoryRepository(),
			locations: locRepoPkg.NewMemoryRepository(),
			ledger:    invRepoPkg.NewMemoryRepository(),
			transfers: trRepoPkg.NewMemoryRepository(),
			issuances: issRepoPkg.NewMemoryRepository(),
			reorders:  reoRepoPkg.NewMemoryRepository(),
		}, nil
	case config.StoreDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("store driver %q needs a database connection", driver)
		}
		return &repositories{
			items:     itemRepoPkg.NewPGRepository(db),
			locations: locRepoPkg.NewPGRepository(db),
			ledger:    invRepoPkg.NewPGRepository(db),
			transfers: trRepoPkg.NewPGRepository(db),
			issuances: issRepoPkg.NewPGRepository(db),
			reorders:  reoRepoPkg.NewPGRepository(db),
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}

func New(cfg *config.Config, deps Deps, log logger.ZapLogger) (*Container, error) {
	repos, err := newRepositories(cfg.Store.Driver, deps.DB)
	if err != nil {
		return nil, err
	}
	if deps.Locker == nil {
		deps.Locker = lock.NewLocalLocker(cfg.Lock.LocalWait)
	}
	m := metrics.New(deps.Registerer)

	c := &Container{Metrics: m, logger: log}
	c.Items = itemUCPkg.NewItemUseCase(repos.items, log)
	c.Locations = locUCPkg.NewLocationUseCase(repos.locations, log)
	c.Ledger = invUCPkg.NewInventoryUseCase(repos.ledger, c.Items, c.Locations, deps.Locker, m, log)
	c.Transfers = trUCPkg.NewTransferUseCase(repos.transfers, c.Ledger, c.Items, c.Locations, deps.Publisher, m, log)
	c.Issuances = issUCPkg.NewIssuanceUseCase(repos.issuances, c.Ledger, c.Items, deps.Publisher, m, log)
	c.Reorders = reoUCPkg.NewReorderUseCase(repos.reorders, c.Ledger, c.Items, c.Locations, deps.Locker, deps.Publisher, m, log)
	c.Monitor = threshold.NewMonitor(c.Reorders, threshold.PolicyFromConfig(cfg.Reorder), log)

	c.Ledger.SetReferenceChecker(c.Reorders)
	c.Ledger.RegisterObserver(c.Monitor)
	return c, nil
}

// RegisterServices mounts every domain service on s.
func (c *Container) RegisterServices(s grpc.ServiceRegistrar) {
	kitinventoryv1.RegisterItemServiceServer(s, itemH.NewItemHandler(c.Items, c.logger))
	kitinventoryv1.RegisterLocationServiceServer(s, locH.NewLocationHandler(c.Locations, c.logger))
	kitinventoryv1.RegisterInventoryServiceServer(s, invH.NewInventoryHandler(c.Ledger, c.Locations, c.logger))
	kitinventoryv1.RegisterTransferServiceServer(s, trH.NewTransferHandler(c.Transfers, c.Locations, c.logger))
	kitinventoryv1.RegisterIssuanceServiceServer(s, issH.NewIssuanceHandler(c.Issuances, c.Locations, c.logger))
	kitinventoryv1.RegisterReorderServiceServer(s, reoH.NewReorderHandler(c.Reorders, c.Locations, c.logger))
}

// ConsumptionListener wires work order consumption events into issuances.
// Rejected events go to deadLetters.
func (c *Container) ConsumptionListener(consumer issListenerPkg.MessageReader, deadLetters broker.Publisher) *issListenerPkg.ConsumptionListener {
	return issListenerPkg.NewConsumptionListener(consumer, c.Issuances, c.Locations, deadLetters, c.logger)
}
