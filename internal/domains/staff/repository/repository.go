package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/shared/constant"
)

type Staff interface {
	GetAll(ctx context.Context) ([]model.Staff, error)
	Create(ctx context.Context, req dto.SaveStaffRequest) (model.Staff, error)
	Update(ctx context.Context, id int, req dto.SaveStaffRequest) (model.Staff, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Staff {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Staff, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Staff.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.BasePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list staff")

		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SaveStaffRequest) (res model.Staff, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Staff.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Post(ctx, model.BasePath, req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create staff member")

		return model.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.SaveStaffRequest) (res model.Staff, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Staff.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("staff_id", id)

	if err = r.client.Put(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), req, &res); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update staff member")

		return model.Staff{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Staff.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("staff_id", id)

	if err = r.client.Delete(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), nil); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete staff member")

		return err
	}

	return nil
}
