package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

func TestHandlers_Ping(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()

	h := New(logx.Nop())
	h.Ping(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rr.Body.String())
}

func TestHandlers_HealthcheckHead(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodHead, "/healthcheck", nil)
	rr := httptest.NewRecorder()

	h := New(logx.Nop())
	h.HealthcheckHead(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandlers_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()

	h := New(logx.Nop())
	h.NotFound(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())
}
