package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/shared/constant"
)

type Customer interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, req dto.SaveCustomerRequest) (model.Customer, error)
	Update(ctx context.Context, id int, req dto.SaveCustomerRequest) (model.Customer, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Customer {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Customer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.BasePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list customers")

		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SaveCustomerRequest) (res model.Customer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Post(ctx, model.BasePath, req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.SaveCustomerRequest) (res model.Customer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Customer.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("customer_id", id)

	if err = r.client.Put(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), req, &res); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update customer")

		return model.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Customer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("customer_id", id)

	if err = r.client.Delete(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), nil); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete customer")

		// A 400 here is the record service refusing to orphan bookings.
		return err
	}

	return nil
}
