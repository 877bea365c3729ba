package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/requestdata"
	"github.com/arvandy/contacts-backend/internal/response"
	"github.com/arvandy/contacts-backend/internal/services"
	"github.com/arvandy/contacts-backend/internal/types"
	"github.com/arvandy/contacts-backend/internal/validation"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) Register(c *gin.Context) {
	var req types.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	profile, err := uh.userService.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

func (uh *UserHandler) Login(c *gin.Context) {
	var req types.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	profile, err := uh.userService.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

func (uh *UserHandler) GetCurrent(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	resp := types.ToUserResponse(rd.User)
	response.OK(c, resp)
}

func (uh *UserHandler) UpdateCurrent(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation.AsAppError(err))
		return
	}
	profile, err := uh.userService.Update(c.Request.Context(), rd.User, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

func (uh *UserHandler) Logout(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if err := uh.userService.Logout(c.Request.Context(), rd.User); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}
