package cmd

import (
	"log/slog"

	httpadapter "dinesmart/internal/adapters/in/http"
	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/application/usecases/queries"
	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/ports"
	"dinesmart/internal/jobs"
)

// CompositionRoot builds every use case on top of one storage backend.
type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	tables     ports.TableRepository
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	uowFactory ports.UnitOfWorkFactory,
	tables ports.TableRepository,
	clock kernel.Clock,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		tables:     tables,
		clock:      clock,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// reads returns repositories that are never bound to a transaction.
func (c *CompositionRoot) reads() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.config.Retry)
}

func (c *CompositionRoot) CreateAddItemsToOrderCommandHandler() commands.AddItemsToOrderCommandHandler {
	return commands.NewAddItemsToOrderCommandHandler(c.orderUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreatePurgeTerminalOrdersCommandHandler() commands.PurgeTerminalOrdersCommandHandler {
	return commands.NewPurgeTerminalOrdersCommandHandler(c.orderUoWFactory(), c.clock, c.config.Retry)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.crossUoWFactory(), c.config.Retry)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateListActiveOrdersQueryHandler() queries.ListActiveOrdersQueryHandler {
	return queries.NewListActiveOrdersQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateGetMenuItemByNameQueryHandler() queries.GetMenuItemByNameQueryHandler {
	return queries.NewGetMenuItemByNameQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.reads())
}

func (c *CompositionRoot) CreateGetTableQueryHandler() queries.GetTableQueryHandler {
	return queries.NewGetTableQueryHandler(c.tables, c.reads())
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.tables, c.reads())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AddItemsToOrder:   c.CreateAddItemsToOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		AddMenuItem:       c.CreateAddMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ListActiveOrders:  c.CreateListActiveOrdersQueryHandler(),
		GetMenuItem:       c.CreateGetMenuItemQueryHandler(),
		GetMenuItemByName: c.CreateGetMenuItemByNameQueryHandler(),
		ListMenuItems:     c.CreateListMenuItemsQueryHandler(),
		ListCategories:    c.CreateListCategoriesQueryHandler(),
		GetTable:          c.CreateGetTableQueryHandler(),
		ListTables:        c.CreateListTablesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeTerminalOrdersCommandHandler(), jobs.PurgeConfig{
		Schedule:  c.config.PurgeSchedule,
		Retention: c.config.PurgeRetention,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
