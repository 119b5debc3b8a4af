package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Options(ctx context.Context) (dto.BookingFormOptions, error)
	Save(ctx context.Context, intent gDto.Intent, req dto.SaveBookingRequest) (model.Booking, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	otel         otel.Otel
}

func New(repo repository.Booking, customerRepo customerRepo.Customer, roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAll(ctx)
}

// Options gathers the selector data the booking form needs: the full
// customer list and only the rooms available at fetch time.
func (s *serviceImpl) Options(ctx context.Context) (res dto.BookingFormOptions, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Options")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load customer options")

		return res, fmt.Errorf("failed to load customer options: %w", err)
	}

	rooms, err := s.roomRepo.GetAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room options")

		return res, fmt.Errorf("failed to load room options: %w", err)
	}

	return dto.BookingFormOptions{Customers: customers, Rooms: rooms}, nil
}

func (s *serviceImpl) Save(ctx context.Context, intent gDto.Intent, req dto.SaveBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("booking form rejected")

		return model.Booking{}, err
	}

	switch it := intent.(type) {
	case gDto.Update:
		return s.repo.Update(ctx, it.ID, req)
	default:
		return s.repo.Create(ctx, req)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return fmt.Errorf("deleting booking: %w", failure.EmptyIdentifier)
	}

	return s.repo.Delete(ctx, id)
}
