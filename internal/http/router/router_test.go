package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bennett-mcdowell/F25-Team03/internal/http/handlers"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/router"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

func TestNew_ServesBaseRoutes(t *testing.T) {
	base := handlers.New(logx.Nop())
	lh := handlers.NewLedgerHandler(logx.Nop(), nil)

	var mux http.Handler = router.New(logx.Nop(), base, lh, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNew_UnauthorizedWithoutDriverHeader(t *testing.T) {
	base := handlers.New(logx.Nop())
	lh := handlers.NewLedgerHandler(logx.Nop(), nil)

	mux := router.New(logx.Nop(), base, lh, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/driver/sponsors", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
