package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"patternbook/internal/adapters/in/http"
	"patternbook/internal/adapters/out/memory/orderrepo"
	"patternbook/internal/adapters/out/memory/userrepo"
	"patternbook/internal/adapters/out/render"
	"patternbook/internal/core/application/usecases/commands"
	"patternbook/internal/core/application/usecases/queries"
	"patternbook/internal/core/domain/model/car"
	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/order"
	"patternbook/internal/core/domain/model/user"
	"patternbook/internal/core/domain/services"
	"patternbook/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// CompositionRoot wires the in-memory adapters, handlers and factories the
// demos share. All dependencies are constructed here and handed out through
// Create* methods; nothing reaches for ambient state.
type CompositionRoot struct {
	config Config
	orders *orderrepo.Repository
	users  *userrepo.Repository
}

// NewCompositionRoot creates the object graph for the demos.
func NewCompositionRoot(config Config) *CompositionRoot {
	return &CompositionRoot{
		config: config,
		orders: orderrepo.NewRepository(),
		users:  userrepo.NewRepository(),
	}
}

// OrderRepository returns the shared order store as its port.
func (c *CompositionRoot) OrderRepository() ports.OrderRepository {
	return c.orders
}

// UserRepository returns the shared user store as its port.
func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return c.users
}

// CreateListOrderViewsQueryHandler wires the resource-transform query handler.
func (c *CompositionRoot) CreateListOrderViewsQueryHandler() queries.ListOrderViewsQueryHandler {
	return queries.NewListOrderViewsQueryHandler(c.orders, time.Now)
}

// CreateUpdatePasswordCommandHandler wires the password-change handler.
func (c *CompositionRoot) CreateUpdatePasswordCommandHandler() commands.UpdatePasswordCommandHandler {
	return commands.NewUpdatePasswordCommandHandler(c.users, c.config.BcryptCost)
}

// CreatePasswordServer wires the request-handler entry shape of the action.
func (c *CompositionRoot) CreatePasswordServer() *http.PasswordServer {
	return http.NewPasswordServer(c.CreateUpdatePasswordCommandHandler(), c.users, slog.Default())
}

// CreateCarFactory returns the car factory.
func (c *CompositionRoot) CreateCarFactory() car.Factory {
	return car.NewFactory()
}

// CreateViewFactory builds the named-view factory with the demo templates.
func (c *CompositionRoot) CreateViewFactory() (*render.ViewFactory, error) {
	return render.NewViewFactory(map[string]string{
		"order.summary": "Order {{.ID}}: {{.Client}} (fulfilled: {{.Fulfilled}})",
		"car.sticker":   "Car with {{len .}} components",
	})
}

// DepotAddress returns the depot the delivery strategies operate from.
func (c *CompositionRoot) DepotAddress() (kernel.Address, error) {
	return kernel.NewAddress(kernel.Coordinate(c.config.DepotX), kernel.Coordinate(c.config.DepotY))
}

// CreateShipDelivery wires the sea freight strategy.
func (c *CompositionRoot) CreateShipDelivery() (services.ShipDelivery, error) {
	depot, err := c.DepotAddress()
	if err != nil {
		return services.ShipDelivery{}, err
	}

	return services.NewShipDelivery(depot)
}

// CreateAirDelivery wires the air freight strategy.
func (c *CompositionRoot) CreateAirDelivery() (services.AirDelivery, error) {
	depot, err := c.DepotAddress()
	if err != nil {
		return services.AirDelivery{}, err
	}

	return services.NewAirDelivery(depot)
}

// SeedOrders stores SeedOrders example orders, marking the first fulfilled.
func (c *CompositionRoot) SeedOrders(ctx context.Context) error {
	fulfilled := true
	for i := 0; i < c.config.SeedOrders; i++ {
		created, err := c.orders.Create(ctx, fmt.Sprintf("client-%d", i+1), map[string]string{
			"item":     fmt.Sprintf("widget-%d", i+1),
			"quantity": fmt.Sprintf("%d", (i+1)*2),
		})
		if err != nil {
			return err
		}

		if i == 0 {
			if _, err := c.orders.Update(ctx, created.ID(), order.OrderChange{Fulfilled: &fulfilled}); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedUser stores a demo user with the given name and password and returns
// its identifier.
func (c *CompositionRoot) SeedUser(ctx context.Context, name, password string) (kernel.UUID, error) {
	cost := c.config.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return kernel.UUID{}, err
	}

	id := kernel.NewUUID()
	u, err := user.NewUser(id, name, hash)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := c.users.Add(ctx, u); err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}
