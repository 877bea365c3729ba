package app

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/utils"
)

type Config struct {
	Port        string
	BcryptCost  int
	Environment string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnv("PORT", "3000", log),
		BcryptCost:  utils.GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost, log),
		Environment: utils.GetEnv("APP_ENV", "development", log),
	}
}
