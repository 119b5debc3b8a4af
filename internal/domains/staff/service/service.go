package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/domains/staff/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Staff interface {
	GetAll(ctx context.Context) ([]model.Staff, error)
	Save(ctx context.Context, intent gDto.Intent, req dto.SaveStaffRequest) (model.Staff, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Staff {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) Save(ctx context.Context, intent gDto.Intent, req dto.SaveStaffRequest) (res model.Staff, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("staff form rejected")

		return model.Staff{}, err
	}

	switch it := intent.(type) {
	case gDto.Update:
		return s.repo.Update(ctx, it.ID, req)
	default:
		return s.repo.Create(ctx, req)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return fmt.Errorf("deleting staff member: %w", failure.EmptyIdentifier)
	}

	return s.repo.Delete(ctx, id)
}
