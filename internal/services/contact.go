package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/repos"
	"github.com/arvandy/contacts-backend/internal/types"
)

type ContactService interface {
	Create(ctx context.Context, user *types.User, req types.CreateContactRequest) (*types.ContactResponse, error)
	Get(ctx context.Context, user *types.User, contactID int64) (*types.ContactResponse, error)
	Update(ctx context.Context, user *types.User, contactID int64, req types.UpdateContactRequest) (*types.ContactResponse, error)
	Delete(ctx context.Context, user *types.User, contactID int64) error
	Search(ctx context.Context, user *types.User, req types.SearchContactRequest) (*types.ContactPage, error)
	MustExist(ctx context.Context, tx *gorm.DB, user *types.User, contactID int64) (*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{db: db, log: serviceLog, contactRepo: contactRepo}
}

func (cs *contactService) Create(ctx context.Context, user *types.User, req types.CreateContactRequest) (*types.ContactResponse, error) {
	contact := &types.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := cs.contactRepo.Create(ctx, nil, contact); err != nil {
		return nil, err
	}
	resp := types.ToContactResponse(contact)
	return &resp, nil
}

func (cs *contactService) Get(ctx context.Context, user *types.User, contactID int64) (*types.ContactResponse, error) {
	contact, err := cs.MustExist(ctx, nil, user, contactID)
	if err != nil {
		return nil, err
	}
	resp := types.ToContactResponse(contact)
	return &resp, nil
}

// MustExist loads an owner-scoped contact or fails with the undifferentiated
// not-found error. Absence and foreign ownership are indistinguishable on
// purpose.
func (cs *contactService) MustExist(ctx context.Context, tx *gorm.DB, user *types.User, contactID int64) (*types.Contact, error) {
	contact, err := cs.contactRepo.GetByID(ctx, tx, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperr.NotFound("contact not found")
	}
	return contact, nil
}

func (cs *contactService) Update(ctx context.Context, user *types.User, contactID int64, req types.UpdateContactRequest) (*types.ContactResponse, error) {
	var updated *types.Contact
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contact, err := cs.MustExist(ctx, tx, user, contactID)
		if err != nil {
			return err
		}
		if req.FirstName != nil {
			contact.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			contact.LastName = req.LastName
		}
		if req.Email != nil {
			contact.Email = req.Email
		}
		if req.Phone != nil {
			contact.Phone = req.Phone
		}
		if err := cs.contactRepo.Save(ctx, tx, contact); err != nil {
			return err
		}
		updated = contact
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := types.ToContactResponse(updated)
	return &resp, nil
}

func (cs *contactService) Delete(ctx context.Context, user *types.User, contactID int64) error {
	affected, err := cs.contactRepo.DeleteByID(ctx, nil, user.Username, contactID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("contact not found")
	}
	return nil
}

// Search runs a count and a bounded fetch over the same predicate. Results
// are ordered by id so a fixed dataset always pages the same way.
func (cs *contactService) Search(ctx context.Context, user *types.User, req types.SearchContactRequest) (*types.ContactPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.Size
	if size < 1 {
		size = 10
	}
	offset := (page - 1) * size

	filter := repos.ContactFilter{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	total, err := cs.contactRepo.CountSearch(ctx, nil, user.Username, filter)
	if err != nil {
		return nil, err
	}
	contacts, err := cs.contactRepo.Search(ctx, nil, user.Username, filter, size, offset)
	if err != nil {
		return nil, err
	}

	data := make([]types.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, types.ToContactResponse(contact))
	}

	totalPage := int((total + int64(size) - 1) / int64(size))
	return &types.ContactPage{
		Data: data,
		Paging: types.Paging{
			CurrentPage: page,
			TotalPage:   totalPage,
			Size:        size,
		},
	}, nil
}
