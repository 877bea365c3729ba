package services_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/repos"
	"github.com/arvandy/contacts-backend/internal/services"
	"github.com/arvandy/contacts-backend/internal/types"
)

// setupDB opens a private in-memory database per test. A single pooled
// connection keeps the :memory: database alive for the whole test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.AutoMigrate(&types.User{}, &types.Contact{}, &types.Address{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}

type testEnv struct {
	db       *gorm.DB
	users    services.UserService
	contacts services.ContactService
	addrs    services.AddressService
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	gdb := setupDB(t)
	log := logger.NewNop()
	userRepo := repos.NewUserRepo(gdb, log)
	contactRepo := repos.NewContactRepo(gdb, log)
	addressRepo := repos.NewAddressRepo(gdb, log)

	contactService := services.NewContactService(gdb, log, contactRepo)
	return &testEnv{
		db:       gdb,
		users:    services.NewUserService(gdb, log, userRepo, 4),
		contacts: contactService,
		addrs:    services.NewAddressService(gdb, log, addressRepo, contactService),
	}
}

func (e *testEnv) registerAndLogin(t *testing.T, username string) *types.User {
	t.Helper()

	ctx := context.Background()
	_, err := e.users.Register(ctx, types.RegisterUserRequest{
		Username: username,
		Password: "testpassword123",
		Name:     "Test User",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	resp, err := e.users.Login(ctx, types.LoginUserRequest{
		Username: username,
		Password: "testpassword123",
	})
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	user, err := e.users.Authenticate(ctx, resp.Token)
	if err != nil {
		t.Fatalf("authenticate %s: %v", username, err)
	}
	return user
}

func strPtr(s string) *string { return &s }
