package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/requestdata"
	"github.com/arvandy/contacts-backend/internal/response"
	"github.com/arvandy/contacts-backend/internal/services"
	"github.com/arvandy/contacts-backend/internal/types"
	"github.com/arvandy/contacts-backend/internal/validation"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (ch *ContactHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req types.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	contact, err := ch.contactService.Create(c.Request.Context(), rd.User, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contact)
}

func (ch *ContactHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	contact, err := ch.contactService.Get(c.Request.Context(), rd.User, contactID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contact)
}

func (ch *ContactHandler) Update(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req types.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	contact, err := ch.contactService.Update(c.Request.Context(), rd.User, contactID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contact)
}

func (ch *ContactHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	contactID, err := validation.ParseID("contactId", c.Param("contactId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := ch.contactService.Delete(c.Request.Context(), rd.User, contactID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}

// Search returns the page and paging metadata side by side, so it writes the
// body directly instead of going through the data envelope.
func (ch *ContactHandler) Search(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req types.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	page, err := ch.contactService.Search(c.Request.Context(), rd.User, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
