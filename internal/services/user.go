package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/repos"
	"github.com/arvandy/contacts-backend/internal/types"
)

type UserService interface {
	Register(ctx context.Context, req types.RegisterUserRequest) (*types.UserResponse, error)
	Login(ctx context.Context, req types.LoginUserRequest) (*types.UserResponse, error)
	Authenticate(ctx context.Context, token string) (*types.User, error)
	Update(ctx context.Context, user *types.User, req types.UpdateUserRequest) (*types.UserResponse, error)
	Logout(ctx context.Context, user *types.User) error
}

type userService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   repos.UserRepo
	bcryptCost int
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, bcryptCost int) UserService {
	serviceLog := log.With("service", "UserService")
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		db:         db,
		log:        serviceLog,
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The username check and the insert run in
// one transaction, and the unique index backs the check up: a concurrent
// duplicate insert surfaces as the same Conflict error.
func (us *userService) Register(ctx context.Context, req types.RegisterUserRequest) (*types.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), us.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &types.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	}

	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := us.userRepo.UsernameExists(ctx, tx, req.Username)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("username already taken")
		}
		if err := us.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("username already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	us.log.Info("user registered", "username", user.Username)
	resp := types.ToUserResponse(user)
	return &resp, nil
}

// Login deliberately reports unknown usernames and wrong passwords with the
// same message so accounts cannot be enumerated. A successful login stores a
// fresh token, replacing any previous session.
func (us *userService) Login(ctx context.Context, req types.LoginUserRequest) (*types.UserResponse, error) {
	user, err := us.userRepo.GetByUsername(ctx, nil, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("username or password is wrong")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("username or password is wrong")
	}

	token := uuid.NewString()
	if err := us.userRepo.SetToken(ctx, nil, user.Username, &token); err != nil {
		return nil, err
	}

	us.log.Info("user logged in", "username", user.Username)
	resp := types.ToUserResponse(user)
	resp.Token = token
	return &resp, nil
}

// Authenticate resolves a bearer token to its user. Empty, unknown and stale
// tokens all fail the same way.
func (us *userService) Authenticate(ctx context.Context, token string) (*types.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	user, err := us.userRepo.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return user, nil
}

// Update applies a partial profile update: only fields present in the request
// change, and a new password is rehashed before it is stored.
func (us *userService) Update(ctx context.Context, user *types.User, req types.UpdateUserRequest) (*types.UserResponse, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), us.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := us.userRepo.Save(ctx, nil, user); err != nil {
		return nil, err
	}

	resp := types.ToUserResponse(user)
	return &resp, nil
}

func (us *userService) Logout(ctx context.Context, user *types.User) error {
	if err := us.userRepo.SetToken(ctx, nil, user.Username, nil); err != nil {
		return err
	}
	us.log.Info("user logged out", "username", user.Username)
	return nil
}
