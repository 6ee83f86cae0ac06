package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visit-map-api/internal/models"
	"visit-map-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVisitHandler_Create(t *testing.T) {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name           string
		body           string
		mockResult     models.VisitSchedule
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "created",
			body:           `{"name":"定期訪問","start_at":"2025-06-10T10:00:00","customer_id":1}`,
			mockResult:     models.VisitSchedule{ID: 8, Name: "定期訪問", StartAt: &start, CustomerID: intPtr(1)},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":8,"name":"定期訪問","start_at":"2025-06-10T10:00:00","end_at":null,"result":null,"detail":null,"customer_id":1}`,
		},
		{
			name:           "malformed datetime",
			body:           `{"name":"定期訪問","start_at":"10時"}`,
			mockError:      &service.ValidationError{Message: "Invalid datetime: 10時"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid datetime: 10時"}`,
		},
		{
			name:           "unknown customer",
			body:           `{"name":"定期訪問","customer_id":999}`,
			mockError:      service.ErrInvalidCustomerRef,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"customer_id does not reference an existing customer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(t)
			s.visits.On("Create", mock.Anything, mock.AnythingOfType("models.VisitInput")).Return(tt.mockResult, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/visits", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			s.visits.AssertExpectations(t)
		})
	}
}

func TestVisitHandler_MissingName(t *testing.T) {
	r, s := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/visits/3", strings.NewReader(`{"start_at":"2025-06-10T10:00:00"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())
	s.visits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisitHandler_UpdateUnknown(t *testing.T) {
	r, s := newTestRouter(t)
	s.visits.On("Update", mock.Anything, 3, models.VisitInput{Name: "再訪"}).Return(models.VisitSchedule{}, service.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/visits/3", strings.NewReader(`{"name":"再訪"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Visit not found"}`, w.Body.String())
}
