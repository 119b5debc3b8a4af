package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/service"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func TestPaymentService_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookings, mocks.NewOtel())

	mockBookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{
			{BookingID: 3, CustomerName: "Alice", TotalAmount: 199.5},
		}, nil)

	got, err := svc.Options(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "3 - Alice - $199.50", got.Bookings[0].OptionLabel())
}

func TestPaymentService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookings, mocks.NewOtel())

	validReq := dto.SavePaymentRequest{
		BookingID:     3,
		PaymentDate:   "2026-09-01",
		Amount:        199.5,
		PaymentMethod: "Card",
	}

	t.Run("create posts a new payment", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), validReq).
			Return(model.Payment{PaymentID: 8}, nil)

		got, err := svc.Save(context.Background(), gDto.Create{}, validReq)

		require.NoError(t, err)
		assert.Equal(t, 8, got.PaymentID)
	})

	t.Run("update rewrites the named payment", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), 8, validReq).
			Return(model.Payment{PaymentID: 8}, nil)

		_, err := svc.Save(context.Background(), gDto.Update{ID: 8}, validReq)

		assert.NoError(t, err)
	})

	t.Run("missing method is rejected", func(t *testing.T) {
		req := validReq
		req.PaymentMethod = ""

		_, err := svc.Save(context.Background(), gDto.Create{}, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		req := validReq
		req.PaymentDate = "September 1st"

		_, err := svc.Save(context.Background(), gDto.Create{}, req)

		assert.Error(t, err)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)

	svc := service.New(mockRepo, mockBookings, mocks.NewOtel())

	mockRepo.EXPECT().Delete(gomock.Any(), 8).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 8))
	assert.ErrorIs(t, svc.Delete(context.Background(), 0), failure.EmptyIdentifier)
}
