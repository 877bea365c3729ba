package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/types"
)

// ContactFilter describes the search predicate. Nil filters are skipped;
// provided ones combine with AND. Name matches first_name OR last_name as a
// substring.
type ContactFilter struct {
	Name  *string
	Phone *string
	Email *string
}

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	GetByID(ctx context.Context, tx *gorm.DB, username string, id int64) (*types.Contact, error)
	Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	DeleteByID(ctx context.Context, tx *gorm.DB, username string, id int64) (int64, error)
	Search(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter, limit, offset int) ([]*types.Contact, error)
	CountSearch(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter) (int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(contact).Error
}

// GetByID is scoped by owner: a contact id belonging to another user behaves
// exactly like a missing row.
func (cr *contactRepo) GetByID(ctx context.Context, tx *gorm.DB, username string, id int64) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var contact types.Contact
	err := transaction.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (cr *contactRepo) Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(contact).Error
}

func (cr *contactRepo) DeleteByID(ctx context.Context, tx *gorm.DB, username string, id int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&types.Contact{})
	return result.RowsAffected, result.Error
}

func (cr *contactRepo) Search(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter, limit, offset int) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact
	err := applyFilter(transaction.WithContext(ctx).Model(&types.Contact{}), username, filter).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) CountSearch(ctx context.Context, tx *gorm.DB, username string, filter ContactFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var total int64
	err := applyFilter(transaction.WithContext(ctx).Model(&types.Contact{}), username, filter).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func applyFilter(q *gorm.DB, username string, filter ContactFilter) *gorm.DB {
	q = q.Where("username = ?", username)
	if filter.Name != nil {
		pattern := "%" + *filter.Name + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
	}
	if filter.Phone != nil {
		q = q.Where("phone LIKE ?", "%"+*filter.Phone+"%")
	}
	if filter.Email != nil {
		q = q.Where("email LIKE ?", "%"+*filter.Email+"%")
	}
	return q
}
