package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rentapi/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestError(t *testing.T) {
	c, w := newContext()
	Error(c, errors.NotFound("Invalid tenant ID"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Invalid tenant ID"}`, w.Body.String())

	c, w = newContext()
	Error(c, errors.MissingKey("rent key is missed"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"rent key is missed"}`, w.Body.String())
}

func TestCreated(t *testing.T) {
	c, w := newContext()
	Created(c, "abc")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}
