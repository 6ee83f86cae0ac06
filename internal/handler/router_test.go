package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		health         func(context.Context) error
		expectedStatus int
		expectedBody   string
	}{
		{name: "no check", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "database up", health: func(context.Context) error { return nil }, expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "database down", health: func(context.Context) error { return assert.AnError }, expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(Handlers{}, RouterOptions{Health: tt.health})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `visitmap_api_requests_total{endpoint="/health",method="GET",status="200"}`)
}
