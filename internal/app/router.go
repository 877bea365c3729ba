package app

import (
	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthMiddleware: middlewareset.Auth,
		HealthHandler:  handlerset.Health,
		UserHandler:    handlerset.User,
		ContactHandler: handlerset.Contact,
		AddressHandler: handlerset.Address,
	})
}
