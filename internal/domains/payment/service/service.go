package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Payment interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	Options(ctx context.Context) (dto.PaymentFormOptions, error)
	Save(ctx context.Context, intent gDto.Intent, req dto.SavePaymentRequest) (model.Payment, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Payment, bookingRepo bookingRepo.Booking, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) Options(ctx context.Context) (res dto.PaymentFormOptions, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.Options")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking options")

		return res, fmt.Errorf("failed to load booking options: %w", err)
	}

	return dto.PaymentFormOptions{Bookings: bookings}, nil
}

func (s *serviceImpl) Save(ctx context.Context, intent gDto.Intent, req dto.SavePaymentRequest) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("payment form rejected")

		return model.Payment{}, err
	}

	switch it := intent.(type) {
	case gDto.Update:
		return s.repo.Update(ctx, it.ID, req)
	default:
		return s.repo.Create(ctx, req)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return fmt.Errorf("deleting payment: %w", failure.EmptyIdentifier)
	}

	return s.repo.Delete(ctx, id)
}
