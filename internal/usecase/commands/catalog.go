package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/catalog"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/shared"
)

// CatalogCommands replace whole collections; there is no per-item merge.
type CatalogCommands interface {
	ReplaceServices(ctx context.Context, reqs []reqdto.ServiceRequest) ([]catalog.Service, error)
	ReplaceStylists(ctx context.Context, reqs []reqdto.StylistRequest) ([]catalog.Stylist, error)
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, logger: logger}
}

func (c *catalogCommandsImpl) ReplaceServices(ctx context.Context, reqs []reqdto.ServiceRequest) ([]catalog.Service, error) {
	services, err := reqdto.ServicesToDomain(reqs)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().SaveAll(ctx, services)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("Services replaced", slog.Int("count", len(services)))
	return services, nil
}

func (c *catalogCommandsImpl) ReplaceStylists(ctx context.Context, reqs []reqdto.StylistRequest) ([]catalog.Stylist, error) {
	stylists, err := reqdto.StylistsToDomain(reqs)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Stylists().SaveAll(ctx, stylists)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("Stylists replaced", slog.Int("count", len(stylists)))
	return stylists, nil
}
