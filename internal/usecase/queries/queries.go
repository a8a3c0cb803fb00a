package queries

import (
	"context"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/gallery"
)

// ReadStore is the read half of a document repository.
type ReadStore[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
}

type AppointmentQueries interface {
	List(ctx context.Context) ([]domappt.Appointment, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]catalog.Service, error)
	ListStylists(ctx context.Context) ([]catalog.Stylist, error)
}

type GalleryQueries interface {
	List(ctx context.Context) ([]gallery.Item, error)
}

type appointmentQueriesImpl struct {
	store ReadStore[domappt.Appointment]
}

func NewAppointmentQueries(store ReadStore[domappt.Appointment]) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

// List returns every appointment in insertion order.
func (q *appointmentQueriesImpl) List(ctx context.Context) ([]domappt.Appointment, error) {
	return q.store.LoadAll(ctx)
}

type catalogQueriesImpl struct {
	services ReadStore[catalog.Service]
	stylists ReadStore[catalog.Stylist]
}

func NewCatalogQueries(services ReadStore[catalog.Service], stylists ReadStore[catalog.Stylist]) CatalogQueries {
	return &catalogQueriesImpl{services: services, stylists: stylists}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]catalog.Service, error) {
	return q.services.LoadAll(ctx)
}

func (q *catalogQueriesImpl) ListStylists(ctx context.Context) ([]catalog.Stylist, error) {
	return q.stylists.LoadAll(ctx)
}

type galleryQueriesImpl struct {
	store ReadStore[gallery.Item]
}

func NewGalleryQueries(store ReadStore[gallery.Item]) GalleryQueries {
	return &galleryQueriesImpl{store: store}
}

func (q *galleryQueriesImpl) List(ctx context.Context) ([]gallery.Item, error) {
	return q.store.LoadAll(ctx)
}
