package context

import (
	"errors"
	"net/http"

	"FitHub/pkg/errs"
	"FitHub/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type HandlerFunc func(*gin.Context) error

// Wrap adapts an error-returning handler to gin. Business errors carry a
// kind that decides the HTTP status; anything else is a 500.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// response already written, nothing to do
			if c.Writer.Written() {
				return
			}
			var be *errs.Error
			if errors.As(err, &be) {
				c.JSON(httpStatus(be.Kind), response.Response{
					Code: httpStatus(be.Kind),
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func httpStatus(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}
