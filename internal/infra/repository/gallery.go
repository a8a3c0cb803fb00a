package repository

import (
	"log/slog"

	"salon-booking/internal/domain/gallery"
	"salon-booking/internal/infra/docstore"
)

type GalleryRepository = DocumentRepository[gallery.Item]

func NewGalleryRepository(store docstore.Store, logger *slog.Logger) *GalleryRepository {
	return newDocumentRepository[gallery.Item](store, docstore.KeyGallery, logger)
}
