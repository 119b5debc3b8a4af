package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	customerRepo "frontdesk/internal/domains/customer/repository"
	paymentRepo "frontdesk/internal/domains/payment/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/money"
)

// Dashboard derives the summary counters from plain list calls; the record
// service exposes no dedicated aggregate endpoints.
type Dashboard interface {
	CountCustomers(ctx context.Context) (int, error)
	CountAvailableRooms(ctx context.Context) (int, error)
	CountBookings(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RecentBookings(ctx context.Context) ([]bookingModel.Booking, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	paymentRepo  paymentRepo.Payment
	otel         otel.Otel
}

func New(
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	paymentRepo paymentRepo.Payment,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) CountCustomers(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.CountCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}

	return len(customers), nil
}

func (s *serviceImpl) CountAvailableRooms(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.CountAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.GetAvailable(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting available rooms: %w", err)
	}

	return len(rooms), nil
}

func (s *serviceImpl) CountBookings(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.CountBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting bookings: %w", err)
	}

	return len(bookings), nil
}

// TotalRevenue sums every payment amount. Rounding to display cents happens
// at the rendering edge, once.
func (s *serviceImpl) TotalRevenue(ctx context.Context) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.TotalRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payments, err := s.paymentRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load payments for revenue")

		return 0, fmt.Errorf("summing payments: %w", err)
	}

	amounts := make([]float64, len(payments))
	for i, payment := range payments {
		amounts[i] = payment.Amount
	}

	return money.Sum(amounts), nil
}

// RecentBookings returns at most the five newest bookings, newest first.
// Identifiers are server-assigned and monotonic, so descending id is
// creation order.
func (s *serviceImpl) RecentBookings(ctx context.Context) (res []bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.RecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recent bookings: %w", err)
	}

	sorted := make([]bookingModel.Booking, len(bookings))
	copy(sorted, bookings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].BookingID > sorted[j].BookingID
	})

	if len(sorted) > constant.RecentBookingsLimit {
		sorted = sorted[:constant.RecentBookingsLimit]
	}

	return sorted, nil
}
