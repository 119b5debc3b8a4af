package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/constant"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	GetAvailable(ctx context.Context) ([]model.Room, error)
	Create(ctx context.Context, req dto.SaveRoomRequest) (model.Room, error)
	Update(ctx context.Context, id int, req dto.SaveRoomRequest) (model.Room, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.BasePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return res, nil
}

// GetAvailable asks the record service for rooms with is_available = true.
// Filtering stays server-side; the client never re-derives it.
func (r *repositoryImpl) GetAvailable(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Get(ctx, model.AvailablePath, &res); err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SaveRoomRequest) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Post(ctx, model.BasePath, req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return model.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int, req dto.SaveRoomRequest) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("room_id", id)

	if err = r.client.Put(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), req, &res); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update room")

		return model.Room{}, fmt.Errorf("failed to update room: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	scope.SetAttribute("room_id", id)

	if err = r.client.Delete(ctx, fmt.Sprintf("%s/%d", model.BasePath, id), nil); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete room")

		return err
	}

	return nil
}
