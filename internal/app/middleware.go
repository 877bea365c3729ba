package app

import (
	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/middleware"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.User),
	}
}
