package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/repos"
	"github.com/arvandy/contacts-backend/internal/types"
)

type AddressService interface {
	Create(ctx context.Context, user *types.User, contactID int64, req types.CreateAddressRequest) (*types.AddressResponse, error)
	Get(ctx context.Context, user *types.User, contactID, addressID int64) (*types.AddressResponse, error)
	Update(ctx context.Context, user *types.User, contactID, addressID int64, req types.UpdateAddressRequest) (*types.AddressResponse, error)
	Delete(ctx context.Context, user *types.User, contactID, addressID int64) error
	List(ctx context.Context, user *types.User, contactID int64) ([]types.AddressResponse, error)
}

type addressService struct {
	db             *gorm.DB
	log            *logger.Logger
	addressRepo    repos.AddressRepo
	contactService ContactService
}

func NewAddressService(db *gorm.DB, log *logger.Logger, addressRepo repos.AddressRepo, contactService ContactService) AddressService {
	serviceLog := log.With("service", "AddressService")
	return &addressService{
		db:             db,
		log:            serviceLog,
		addressRepo:    addressRepo,
		contactService: contactService,
	}
}

// Every operation walks the ownership chain in order: the contact must belong
// to the caller before the address under it is even looked at. Both failures
// are plain 404s.

func (as *addressService) Create(ctx context.Context, user *types.User, contactID int64, req types.CreateAddressRequest) (*types.AddressResponse, error) {
	var created *types.Address
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, contactID); err != nil {
			return err
		}
		address := &types.Address{
			ContactID:  contactID,
			Street:     req.Street,
			City:       req.City,
			Province:   req.Province,
			Country:    req.Country,
			PostalCode: req.PostalCode,
		}
		if err := as.addressRepo.Create(ctx, tx, address); err != nil {
			return err
		}
		created = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := types.ToAddressResponse(created)
	return &resp, nil
}

func (as *addressService) Get(ctx context.Context, user *types.User, contactID, addressID int64) (*types.AddressResponse, error) {
	if _, err := as.contactService.MustExist(ctx, nil, user, contactID); err != nil {
		return nil, err
	}
	address, err := as.mustExist(ctx, nil, contactID, addressID)
	if err != nil {
		return nil, err
	}
	resp := types.ToAddressResponse(address)
	return &resp, nil
}

func (as *addressService) mustExist(ctx context.Context, tx *gorm.DB, contactID, addressID int64) (*types.Address, error) {
	address, err := as.addressRepo.GetByID(ctx, tx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apperr.NotFound("address not found")
	}
	return address, nil
}

func (as *addressService) Update(ctx context.Context, user *types.User, contactID, addressID int64, req types.UpdateAddressRequest) (*types.AddressResponse, error) {
	var updated *types.Address
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, contactID); err != nil {
			return err
		}
		address, err := as.mustExist(ctx, tx, contactID, addressID)
		if err != nil {
			return err
		}
		if req.Street != nil {
			address.Street = req.Street
		}
		if req.City != nil {
			address.City = req.City
		}
		if req.Province != nil {
			address.Province = req.Province
		}
		if req.Country != nil {
			address.Country = req.Country
		}
		if req.PostalCode != nil {
			address.PostalCode = req.PostalCode
		}
		if err := as.addressRepo.Save(ctx, tx, address); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := types.ToAddressResponse(updated)
	return &resp, nil
}

func (as *addressService) Delete(ctx context.Context, user *types.User, contactID, addressID int64) error {
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.contactService.MustExist(ctx, tx, user, contactID); err != nil {
			return err
		}
		affected, err := as.addressRepo.DeleteByID(ctx, tx, contactID, addressID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound("address not found")
		}
		return nil
	})
}

func (as *addressService) List(ctx context.Context, user *types.User, contactID int64) ([]types.AddressResponse, error) {
	if _, err := as.contactService.MustExist(ctx, nil, user, contactID); err != nil {
		return nil, err
	}
	addresses, err := as.addressRepo.ListByContactID(ctx, nil, contactID)
	if err != nil {
		return nil, err
	}
	results := make([]types.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		results = append(results, types.ToAddressResponse(address))
	}
	return results, nil
}
