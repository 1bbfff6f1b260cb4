// Package resourcetest wires resource handlers onto a throwaway router backed
// by an in-memory database.
package resourcetest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/database/dbtest"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/pkg/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// ErrorBody mirrors the error envelope.
type ErrorBody struct {
	OK      int    `json:"ok"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Router builds a test router and hands register a fresh database.
func Router(t testing.TB, register func(rg *gin.RouterGroup, db *gorm.DB, log *zap.Logger)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Setup()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(response.NotFound)
	r.NoMethod(response.MethodNotAllowed)
	register(r.Group(""), dbtest.New(t), zaptest.NewLogger(t))
	return r
}

// Do sends a request. A non-nil body that is not a string is encoded as JSON.
func Do(t testing.TB, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorded body into T.
func Decode[T any](t testing.TB, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
