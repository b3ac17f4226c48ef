package routes

import (
	"context"
	"log/slog"

	"detailshop/internal/adapter/persistence/repository"
	"detailshop/internal/adapter/persistence/sqlstore"
	"detailshop/internal/config"
	"detailshop/internal/infrastructure/database"
	"detailshop/internal/usecase/interfaces"
)

type repositories struct {
	organizations interfaces.IOrganizationRepository
	services      interfaces.IServiceRepository
	modifiers     interfaces.IModifierRepository
	clients       interfaces.IClientRepository
	assessments   interfaces.IAssessmentRepository
	payments      interfaces.IAssessmentPaymentRepository
	close         func()
}

// openRepositories connects the store selected by STORAGE_DRIVER.
func openRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageDriver == config.StorageDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		slog.Info("[database] using DynamoDB", "region", cfg.AWSRegion, "endpoint", cfg.DynamoDBEndpoint)
		return repositories{
			organizations: repository.NewOrganizationDynamoRepository(ddb, cfg.Tables.Organizations),
			services:      repository.NewServiceDynamoRepository(ddb, cfg.Tables.Services),
			modifiers:     repository.NewModifierDynamoRepository(ddb, cfg.Tables.Modifiers),
			clients:       repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients),
			assessments:   repository.NewAssessmentDynamoRepository(ddb, cfg.Tables.Assessments),
			payments:      repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments),
			close:         func() {},
		}, nil
	}

	db, dialect, err := database.OpenSQL(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	slog.Info("[database] using SQL store", "dialect", string(dialect))
	store := sqlstore.New(db, dialect)
	return repositories{
		organizations: store.Organizations(),
		services:      store.Services(),
		modifiers:     store.Modifiers(),
		clients:       store.Clients(),
		assessments:   store.Assessments(),
		payments:      store.Payments(),
		close: func() {
			if err := store.Close(); err != nil {
				slog.Warn("[database] close failed", "err", err)
			}
		},
	}, nil
}
