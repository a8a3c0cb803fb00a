package repository

import (
	"log/slog"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra/docstore"
)

type ServiceRepository = DocumentRepository[catalog.Service]

type StylistRepository = DocumentRepository[catalog.Stylist]

func NewServiceRepository(store docstore.Store, logger *slog.Logger) *ServiceRepository {
	return newDocumentRepository[catalog.Service](store, docstore.KeyServices, logger)
}

func NewStylistRepository(store docstore.Store, logger *slog.Logger) *StylistRepository {
	return newDocumentRepository[catalog.Stylist](store, docstore.KeyStylists, logger)
}
