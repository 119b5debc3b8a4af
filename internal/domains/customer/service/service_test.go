package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/service"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func TestCustomerService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	validReq := dto.SaveCustomerRequest{
		Name:  "Alice",
		Phone: "555-0100",
		Email: "alice@example.com",
	}

	tests := []struct {
		name      string
		intent    gDto.Intent
		req       dto.SaveCustomerRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "create posts a new record",
			intent: gDto.Create{},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), validReq).
					Return(model.Customer{CustomerID: 1, Name: "Alice"}, nil)
			},
		},
		{
			name:   "update rewrites the named record",
			intent: gDto.Update{ID: 7},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), 7, validReq).
					Return(model.Customer{CustomerID: 7, Name: "Alice"}, nil)
			},
		},
		{
			name:      "missing name never reaches the repository",
			intent:    gDto.Create{},
			req:       dto.SaveCustomerRequest{Phone: "555-0100"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "malformed email never reaches the repository",
			intent:    gDto.Create{},
			req:       dto.SaveCustomerRequest{Name: "Alice", Phone: "555-0100", Email: "not-an-email"},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Save(context.Background(), tt.intent, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Alice", got.Name)
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("delegates to repository", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), 3).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 3))
	})

	t.Run("conflict passes through", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 3).
			Return(failure.Conflict("customer has bookings"))

		err := svc.Delete(context.Background(), 3)

		assert.True(t, failure.IsConflict(err))
	})

	t.Run("non-positive id is rejected locally", func(t *testing.T) {
		err := svc.Delete(context.Background(), 0)

		assert.ErrorIs(t, err, failure.EmptyIdentifier)
	})
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Customer{{CustomerID: 1, Name: "Alice"}}, nil)

	got, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
