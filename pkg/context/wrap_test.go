package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"FitHub/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h func(*gin.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Wrap(h))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestWrapMapsKindsToStatus(t *testing.T) {
	cases := []struct {
		kind errs.Kind
		want int
	}{
		{errs.KindValidation, http.StatusBadRequest},
		{errs.KindNotFound, http.StatusNotFound},
		{errs.KindForbidden, http.StatusForbidden},
		{errs.KindConflict, http.StatusConflict},
		{errs.KindUnauthorized, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		w := doRequest(t, func(*gin.Context) error {
			return errs.New(tc.kind, "boom")
		})
		require.Equal(t, tc.want, w.Code)
	}
}

func TestWrapUnknownErrorIs500(t *testing.T) {
	w := doRequest(t, func(*gin.Context) error {
		return errors.New("boom")
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWrapLeavesWrittenResponse(t *testing.T) {
	w := doRequest(t, func(c *gin.Context) error {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		return errors.New("already handled")
	})
	require.Equal(t, http.StatusTeapot, w.Code)
}
