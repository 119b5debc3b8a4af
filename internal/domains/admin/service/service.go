package service

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/admin/repository"
	"frontdesk/shared/constant"
)

type Admin interface {
	DropDatabase(ctx context.Context) (string, error)
}

type serviceImpl struct {
	repo repository.Admin
	otel otel.Otel
}

func New(repo repository.Admin, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) DropDatabase(ctx context.Context) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin.DropDatabase")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.DropDatabase(ctx)
}
