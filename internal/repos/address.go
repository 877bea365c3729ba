package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, address *types.Address) error
	GetByID(ctx context.Context, tx *gorm.DB, contactID, id int64) (*types.Address, error)
	Save(ctx context.Context, tx *gorm.DB, address *types.Address) error
	DeleteByID(ctx context.Context, tx *gorm.DB, contactID, id int64) (int64, error)
	ListByContactID(ctx context.Context, tx *gorm.DB, contactID int64) ([]*types.Address, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Create(address).Error
}

// GetByID uses the (contact_id, id) compound key: an address id under a
// different contact behaves like a missing row.
func (ar *addressRepo) GetByID(ctx context.Context, tx *gorm.DB, contactID, id int64) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var address types.Address
	err := transaction.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (ar *addressRepo) Save(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Save(address).Error
}

func (ar *addressRepo) DeleteByID(ctx context.Context, tx *gorm.DB, contactID, id int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&types.Address{})
	return result.RowsAffected, result.Error
}

func (ar *addressRepo) ListByContactID(ctx context.Context, tx *gorm.DB, contactID int64) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
