package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/requestdata"
	"github.com/arvandy/contacts-backend/internal/response"
	"github.com/arvandy/contacts-backend/internal/services"
	"github.com/arvandy/contacts-backend/internal/types"
	"github.com/arvandy/contacts-backend/internal/validation"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (ah *AddressHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req types.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	address, err := ah.addressService.Create(c.Request.Context(), rd.User, contactID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}

func (ah *AddressHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, addressID, err := addressIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	address, err := ah.addressService.Get(c.Request.Context(), rd.User, contactID, addressID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}

func (ah *AddressHandler) Update(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, addressID, err := addressIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req types.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	address, err := ah.addressService.Update(c.Request.Context(), rd.User, contactID, addressID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, address)
}

func (ah *AddressHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, addressID, err := addressIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := ah.addressService.Delete(c.Request.Context(), rd.User, contactID, addressID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}

func (ah *AddressHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	addresses, err := ah.addressService.List(c.Request.Context(), rd.User, contactID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, addresses)
}

func addressIDs(c *gin.Context) (int64, int64, error) {
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		return 0, 0, err
	}
	addressID, err := validation.ParseID("addressId", c.Param("addressId"))
	if err != nil {
		return 0, 0, err
	}
	return contactID, addressID, nil
}
