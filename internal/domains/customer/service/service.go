package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type Customer interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Save(ctx context.Context, intent gDto.Intent, req dto.SaveCustomerRequest) (model.Customer, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetAll(ctx)
}

// Save dispatches a form submission: a Create intent posts a new record, an
// Update intent rewrites the record it names. Validation happens before
// anything touches the wire.
func (s *serviceImpl) Save(ctx context.Context, intent gDto.Intent, req dto.SaveCustomerRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Customer.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Msg("customer form rejected")

		return model.Customer{}, err
	}

	switch it := intent.(type) {
	case gDto.Update:
		return s.repo.Update(ctx, it.ID, req)
	default:
		return s.repo.Create(ctx, req)
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Customer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return fmt.Errorf("deleting customer: %w", failure.EmptyIdentifier)
	}

	return s.repo.Delete(ctx, id)
}
