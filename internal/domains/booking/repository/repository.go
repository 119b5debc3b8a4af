package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/constant"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Create(ctx context.Context, req dto.SaveBookingRequest) (model.Booking, error)
	Update(ctx context.Context, id int, req dto.SaveBookingRequest) (model.Booking, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.BasePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SaveBookingRequest) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Post(ctx, model.BasePath, req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.SaveBookingRequest) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("booking_id", id)

	if err = r.client.Put(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), req, &res); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update booking")

		return model.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("booking_id", id)

	if err = r.client.Delete(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), nil); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete booking")

		return err
	}

	return nil
}
