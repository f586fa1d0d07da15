package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/handlers"
	"github.com/SscSPs/bank_onboarding_app/internal/middleware"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// assert500Err stands in for an infrastructure failure the handlers do not recognise.
var assert500Err = errors.New("connection refused")

// mocks bundles one mock per service for a test router.
type mocks struct {
	account  *MockAccountService
	customer *MockCustomerService
	auth     *MockAuthService
	health   *MockHealthService
}

func newMocks() *mocks {
	return &mocks{
		account:  new(MockAccountService),
		customer: new(MockCustomerService),
		auth:     new(MockAuthService),
		health:   new(MockHealthService),
	}
}

func (m *mocks) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  m.account,
		Customer: m.customer,
		Auth:     m.auth,
		Health:   m.health,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, m *mocks) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, m.container()))
	return r
}

func doRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
