package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	GetAvailable(ctx context.Context) ([]model.Room, error)
	Save(ctx context.Context, intent gDto.Intent, req dto.SaveRoomRequest) (model.Room, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) GetAvailable(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAvailable(ctx)
}

func (s *serviceImpl) Save(ctx context.Context, intent gDto.Intent, req dto.SaveRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("room form rejected")

		return model.Room{}, err
	}

	switch it := intent.(type) {
	case gDto.Update:
		return s.repo.Update(ctx, it.ID, req)
	default:
		return s.repo.Create(ctx, req)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return fmt.Errorf("deleting room: %w", failure.EmptyIdentifier)
	}

	return s.repo.Delete(ctx, id)
}
