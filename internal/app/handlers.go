package app

import (
	"github.com/arvandy/contacts-backend/internal/handlers"
	"github.com/arvandy/contacts-backend/internal/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	User    *handlers.UserHandler
	Contact *handlers.ContactHandler
	Address *handlers.AddressHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		User:    handlers.NewUserHandler(serviceset.User),
		Contact: handlers.NewContactHandler(serviceset.Contact),
		Address: handlers.NewAddressHandler(serviceset.Address),
	}
}
