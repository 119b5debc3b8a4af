package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/shared/constant"
)

type Payment interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	Create(ctx context.Context, req dto.SavePaymentRequest) (model.Payment, error)
	Update(ctx context.Context, id int, req dto.SavePaymentRequest) (model.Payment, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Payment {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Payment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.BasePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list payments")

		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SavePaymentRequest) (res model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Post(ctx, model.BasePath, req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return model.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.SavePaymentRequest) (res model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Payment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("payment_id", id)

	if err = r.client.Put(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), req, &res); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update payment")

		return model.Payment{}, fmt.Errorf("failed to update payment: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("payment_id", id)

	if err = r.client.Delete(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), nil); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete payment")

		return err
	}

	return nil
}
