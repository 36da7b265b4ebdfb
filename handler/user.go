package handler

import (
	"FitHub/config"
	"FitHub/pkg/context"
	"FitHub/pkg/errs"
	"FitHub/pkg/response"
	"FitHub/service"
	"FitHub/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.POST("", context.Wrap(h.Register))
	g.GET("/:username", context.Wrap(h.FindByUsername))
}

func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validationf("invalid request body: %s", err.Error())
	}

	view, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

func (h *User) FindByUsername(c *gin.Context) error {
	username := c.Param("username")
	if username == "" {
		return errs.Validationf("username is required")
	}

	view, err := h.UserService.FindByUsername(c.Request.Context(), username)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}
