package app

import (
	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/services"
)

type Services struct {
	User    services.UserService
	Contact services.ContactService
	Address services.AddressService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	userService := services.NewUserService(db, log, reposet.User, cfg.BcryptCost)
	contactService := services.NewContactService(db, log, reposet.Contact)
	addressService := services.NewAddressService(db, log, reposet.Address, contactService)
	return Services{
		User:    userService,
		Contact: contactService,
		Address: addressService,
	}
}
