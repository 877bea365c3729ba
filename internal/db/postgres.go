package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/types"
	"github.com/arvandy/contacts-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "contacts", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the user service maps to Conflict.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Contact{},
		&types.Address{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships...")
	if err := s.db.Exec(`
		ALTER TABLE "contacts"
		DROP CONSTRAINT IF EXISTS "fk_contacts_username";
	`).Error; err != nil {
		return fmt.Errorf("reset fk_contacts_username: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "contacts"
		ADD CONSTRAINT "fk_contacts_username"
		FOREIGN KEY ("username")
		REFERENCES "users"("username")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("add fk_contacts_username: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "addresses"
		DROP CONSTRAINT IF EXISTS "fk_addresses_contact_id";
	`).Error; err != nil {
		return fmt.Errorf("reset fk_addresses_contact_id: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "addresses"
		ADD CONSTRAINT "fk_addresses_contact_id"
		FOREIGN KEY ("contact_id")
		REFERENCES "contacts"("id")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("add fk_addresses_contact_id: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
