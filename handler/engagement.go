package handler

import (
	"FitHub/config"
	"FitHub/middleware"
	"FitHub/pkg/context"
	"FitHub/pkg/errs"
	"FitHub/pkg/response"
	"FitHub/service"
	"FitHub/types"

	"github.com/gin-gonic/gin"
)

type Engagement struct {
	Config            *config.Config
	EngagementService service.IEngagementService
}

func (h *Engagement) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/exercises")
	g.POST("/:id/favorite", authorize, context.Wrap(h.ToggleFavorite))
	g.POST("/:id/save", authorize, context.Wrap(h.ToggleSave))
	g.POST("/:id/rate", authorize, context.Wrap(h.Rate))
	// favoriters list carries no caller identity
	g.GET("/:id/favorites", context.Wrap(h.ListFavoriters))
}

func (h *Engagement) ToggleFavorite(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	favorited, err := h.EngagementService.ToggleFavorite(c.Request.Context(), id, callerID)
	if err != nil {
		return err
	}
	msg := "exercise unfavorited"
	if favorited {
		msg = "exercise favorited"
	}
	response.Success(c, types.EngagementResponse{Message: msg})
	return nil
}

func (h *Engagement) ToggleSave(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	saved, err := h.EngagementService.ToggleSave(c.Request.Context(), id, callerID)
	if err != nil {
		return err
	}
	msg := "exercise unsaved"
	if saved {
		msg = "exercise saved"
	}
	response.Success(c, types.EngagementResponse{Message: msg})
	return nil
}

func (h *Engagement) Rate(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req types.RateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validationf("invalid request body: %s", err.Error())
	}

	if err := h.EngagementService.Rate(c.Request.Context(), id, callerID, req.Value); err != nil {
		return err
	}
	response.Success(c, types.EngagementResponse{Message: "exercise rated"})
	return nil
}

func (h *Engagement) ListFavoriters(c *gin.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	users, err := h.EngagementService.ListFavoriters(c.Request.Context(), id)
	if err != nil {
		return err
	}
	views := make([]types.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, types.UserView{ID: u.ID, Username: u.Username})
	}
	response.Success(c, views)
	return nil
}
