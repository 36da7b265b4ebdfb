package handler

import (
	"net/http"
	"strconv"

	"FitHub/config"
	"FitHub/middleware"
	"FitHub/pkg/context"
	"FitHub/pkg/errs"
	"FitHub/pkg/response"
	"FitHub/service"
	"FitHub/types"

	"github.com/gin-gonic/gin"
)

type Exercise struct {
	Config          *config.Config
	ExerciseService service.IExerciseService
}

func (h *Exercise) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/exercises", authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.FindAll))
	g.GET("/:id", context.Wrap(h.FindOne))
	g.PATCH("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Exercise) Create(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}

	var req types.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validationf("invalid request body: %s", err.Error())
	}

	ex, err := h.ExerciseService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		return err
	}
	response.Success(c, ex)
	return nil
}

func (h *Exercise) Update(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req types.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validationf("invalid request body: %s", err.Error())
	}

	ex, err := h.ExerciseService.Update(c.Request.Context(), id, callerID, &req)
	if err != nil {
		return err
	}
	response.Success(c, ex)
	return nil
}

func (h *Exercise) Delete(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.ExerciseService.Delete(c.Request.Context(), id, callerID); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Exercise) FindOne(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	view, err := h.ExerciseService.FindOne(c.Request.Context(), id, callerID)
	if err != nil {
		return err
	}
	response.Success(c, view)
	return nil
}

func (h *Exercise) FindAll(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return errs.Unauthorizedf("not logged in")
	}

	var filter types.ExerciseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return errs.Validationf("invalid filter: %s", err.Error())
	}

	items, err := h.ExerciseService.FindAll(c.Request.Context(), callerID, filter)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func parseIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validationf("invalid exercise id %q", raw)
	}
	return id, nil
}
