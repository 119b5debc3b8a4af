package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/dashboard/service"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/money"
)

type fixture struct {
	customers *customerMocks.MockCustomer
	rooms     *roomMocks.MockRoom
	bookings  *bookingMocks.MockBooking
	payments  *paymentMocks.MockPayment
	svc       service.Dashboard
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		customers: customerMocks.NewMockCustomer(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		payments:  paymentMocks.NewMockPayment(ctrl),
	}
	f.svc = service.New(f.customers, f.rooms, f.bookings, f.payments, mocks.NewOtel())

	return f
}

func TestDashboard_CountCustomers(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().
		GetAll(gomock.Any()).
		Return([]customerModel.Customer{{CustomerID: 1}, {CustomerID: 2}, {CustomerID: 3}}, nil)

	got, err := f.svc.CountCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDashboard_CountAvailableRooms(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().
		GetAvailable(gomock.Any()).
		Return([]roomModel.Room{{RoomID: 1, IsAvailable: true}}, nil)

	got, err := f.svc.CountAvailableRooms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDashboard_CountBookings(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{{BookingID: 1}, {BookingID: 2}}, nil)

	got, err := f.svc.CountBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestDashboard_TotalRevenue(t *testing.T) {
	t.Run("sums every payment", func(t *testing.T) {
		f := newFixture(t)

		f.payments.EXPECT().
			GetAll(gomock.Any()).
			Return([]paymentModel.Payment{
				{PaymentID: 1, Amount: 100},
				{PaymentID: 2, Amount: 99.5},
				{PaymentID: 3, Amount: 0},
			}, nil)

		got, err := f.svc.TotalRevenue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "$199.50", money.Format(got))
	})

	t.Run("no payments means zero", func(t *testing.T) {
		f := newFixture(t)

		f.payments.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		got, err := f.svc.TotalRevenue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("fetch failure surfaces", func(t *testing.T) {
		f := newFixture(t)

		f.payments.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := f.svc.TotalRevenue(context.Background())

		assert.Error(t, err)
	})
}

func TestDashboard_RecentBookings(t *testing.T) {
	t.Run("newest five, descending id", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().
			GetAll(gomock.Any()).
			Return([]bookingModel.Booking{
				{BookingID: 3}, {BookingID: 7}, {BookingID: 1},
				{BookingID: 9}, {BookingID: 4}, {BookingID: 6}, {BookingID: 2},
			}, nil)

		got, err := f.svc.RecentBookings(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 5)

		ids := make([]int, len(got))
		for i, b := range got {
			ids[i] = b.BookingID
		}

		assert.Equal(t, []int{9, 7, 6, 4, 3}, ids)
	})

	t.Run("fewer than five returns all", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().
			GetAll(gomock.Any()).
			Return([]bookingModel.Booking{{BookingID: 2}, {BookingID: 5}}, nil)

		got, err := f.svc.RecentBookings(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 5, got[0].BookingID)
	})

	t.Run("input order is preserved elsewhere", func(t *testing.T) {
		f := newFixture(t)

		original := []bookingModel.Booking{{BookingID: 3}, {BookingID: 7}}

		f.bookings.EXPECT().GetAll(gomock.Any()).Return(original, nil)

		_, err := f.svc.RecentBookings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, original[0].BookingID)
	})
}
