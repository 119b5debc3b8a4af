package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

const dropDatabasePath = "/drop-database"

type Admin interface {
	DropDatabase(ctx context.Context) (string, error)
}

type repositoryImpl struct {
	client *api.Client
	otel   otel.Otel
}

func New(client *api.Client, otel otel.Otel) Admin {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// DropDatabase triggers the record service's full wipe and returns the
// service's own message verbatim for display.
func (r *repositoryImpl) DropDatabase(ctx context.Context) (msg string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Admin.DropDatabase")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var body struct {
		Message string `json:"message"`
	}

	if err = r.client.Delete(ctx, dropDatabasePath, &body); err != nil {
		log.Error().Err(err).Msg("failed to drop database")

		return "", fmt.Errorf("failed to drop database: %w", err)
	}

	return body.Message, nil
}
