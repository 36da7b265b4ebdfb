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

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/refresh", context.Wrap(h.Refresh))
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validationf("invalid request body: %s", err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return errs.Validationf("username and password are required")
	}

	pair, err := h.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		return errs.Validationf("refresh_token is required")
	}

	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}
