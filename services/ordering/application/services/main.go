package services

import (
	"github.com/ghuser/dosadiner/pkg/app"
	"github.com/ghuser/dosadiner/pkg/cache"
	"github.com/ghuser/dosadiner/services/ordering/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the ordering
// bounded context. It wires domain services with their infrastructure
// implementations.
type Services struct {
	Customers *CustomerService
	Menu      *MenuService
	Orders    *OrderService
}

// New wires all ordering application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	menuCache := cache.NewMenuCache(a.Redis)
	return &Services{
		Customers: NewCustomerService(postgres.NewCustomerRepository(a.Db)),
		Menu:      NewMenuService(postgres.NewMenuItemRepository(a.Db, a.EventBus), menuCache, a.Logger),
		Orders:    NewOrderService(postgres.NewOrderRepository(a.Db, a.EventBus)),
	}
}
