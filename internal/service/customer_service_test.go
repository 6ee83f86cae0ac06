package service

import (
	"context"
	"testing"

	"visit-map-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tokyo() models.Customer {
	return models.Customer{
		ID:          1,
		Name:        "東京本社ビル",
		Address:     "東京都千代田区丸の内1-9-1",
		Latitude:    35.681236,
		Longitude:   139.767125,
		VisitStatus: strPtr("未訪問"),
	}
}

func TestCustomerService_Create(t *testing.T) {
	lat, lng := 35.681236, 139.767125
	in := models.CustomerInput{
		Name:        "東京本社ビル",
		Address:     "東京都千代田区丸の内1-9-1",
		Latitude:    &lat,
		Longitude:   &lng,
		VisitStatus: strPtr("未訪問"),
	}

	mockRepo := new(MockRepository)
	expected := in.Customer(0)
	mockRepo.On("CreateCustomer", mock.Anything, expected).Return(tokyo(), nil)

	svc := NewCustomerService(mockRepo)
	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, tokyo(), got)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_Update(t *testing.T) {
	lat, lng := 35.0, 139.0
	in := models.CustomerInput{Name: "移転", Address: "どこか", Latitude: &lat, Longitude: &lng}

	tests := []struct {
		name      string
		mockError error
		expectErr error
	}{
		{name: "updated"},
		{name: "missing", mockError: models.ErrNotFound, expectErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("UpdateCustomer", mock.Anything, in.Customer(7)).Return(in.Customer(7), tt.mockError)

			got, err := NewCustomerService(mockRepo).Update(context.Background(), 7, in)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, got.ID)
				assert.Equal(t, 35.0, got.Latitude)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCustomerService_Detail(t *testing.T) {
	c := tokyo()
	visits := []models.VisitSchedule{{ID: 3, Name: "定期訪問", CustomerID: intPtr(1)}}

	tests := []struct {
		name        string
		setup       func(m *MockRepository)
		expected    models.CustomerDetail
		expectError error
	}{
		{
			name: "customer with visits",
			setup: func(m *MockRepository) {
				m.On("GetCustomer", mock.Anything, 1).Return(&c, nil)
				m.On("VisitsByCustomer", mock.Anything, 1).Return(visits, nil)
			},
			expected: models.CustomerDetail{Customer: c, Visits: visits},
		},
		{
			name: "unknown customer",
			setup: func(m *MockRepository) {
				m.On("GetCustomer", mock.Anything, 1).Return(nil, models.ErrNotFound)
			},
			expectError: ErrNotFound,
		},
		{
			name: "visit query fails",
			setup: func(m *MockRepository) {
				m.On("GetCustomer", mock.Anything, 1).Return(&c, nil)
				m.On("VisitsByCustomer", mock.Anything, 1).Return([]models.VisitSchedule(nil), assert.AnError)
			},
			expectError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)

			got, err := NewCustomerService(mockRepo).Detail(context.Background(), 1)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("DeleteCustomer", mock.Anything, 9).Return(models.ErrNotFound)

	err := NewCustomerService(mockRepo).Delete(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertExpectations(t)
}
