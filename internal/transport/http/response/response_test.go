package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMsg(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Msg(c, http.StatusBadRequest, "Missing required field: email")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Missing required field: email"}`, w.Body.String())
}

func TestInternal_GenericBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// 不往外带内部错误细节
	require.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
