package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func TestBookingService_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomers := customerMocks.NewMockCustomer(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockCustomers, mockRooms, mocks.NewOtel())

	t.Run("combines all customers with available rooms", func(t *testing.T) {
		mockCustomers.EXPECT().
			GetAll(gomock.Any()).
			Return([]customerModel.Customer{{CustomerID: 1, Name: "Alice"}}, nil)

		mockRooms.EXPECT().
			GetAvailable(gomock.Any()).
			Return([]roomModel.Room{{RoomID: 2, RoomType: "Suite", PricePerNight: 250, IsAvailable: true}}, nil)

		got, err := svc.Options(context.Background())

		require.NoError(t, err)
		require.Len(t, got.Customers, 1)
		require.Len(t, got.Rooms, 1)
		assert.Equal(t, "1 - Alice", got.Customers[0].OptionLabel())
		assert.Equal(t, "2 - Suite ($250.00)", got.Rooms[0].OptionLabel())
	})

	t.Run("customer fetch failure aborts without fetching rooms", func(t *testing.T) {
		mockCustomers.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.Options(context.Background())

		assert.Error(t, err)
	})
}

func TestBookingService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomers := customerMocks.NewMockCustomer(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockCustomers, mockRooms, mocks.NewOtel())

	validReq := dto.SaveBookingRequest{
		CustomerID:   1,
		RoomID:       2,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
		TotalAmount:  199,
	}

	tests := []struct {
		name      string
		intent    gDto.Intent
		req       dto.SaveBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "create posts a new booking",
			intent: gDto.Create{},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), validReq).
					Return(model.Booking{BookingID: 10}, nil)
			},
		},
		{
			name:   "update rewrites the named booking",
			intent: gDto.Update{ID: 10},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), 10, validReq).
					Return(model.Booking{BookingID: 10}, nil)
			},
		},
		{
			name:   "malformed check-in date is rejected",
			intent: gDto.Create{},
			req: dto.SaveBookingRequest{
				CustomerID:   1,
				RoomID:       2,
				CheckInDate:  "01/09/2026",
				CheckOutDate: "2026-09-03",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:   "missing customer is rejected",
			intent: gDto.Create{},
			req: dto.SaveBookingRequest{
				RoomID:       2,
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-03",
			},
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
			assert.Equal(t, 10, got.BookingID)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomers := customerMocks.NewMockCustomer(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockCustomers, mockRooms, mocks.NewOtel())

	t.Run("delegates to repository", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), 4).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 4))
	})

	t.Run("conflict from dependent payments passes through", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 4).
			Return(failure.Conflict("booking has payments"))

		assert.True(t, failure.IsConflict(svc.Delete(context.Background(), 4)))
	})

	t.Run("non-positive id is rejected locally", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), -1), failure.EmptyIdentifier)
	})
}
