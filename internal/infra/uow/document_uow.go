package uow

import (
	"context"
	"sync"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/gallery"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/usecase/shared"
)

// DocumentUoW serializes every read-modify-write cycle in this process.
// Documents are rewritten whole, so there is nothing to roll back: a failed
// fn simply leaves the last saved document in place.
type DocumentUoW struct {
	mu sync.Mutex

	appointments *repository.AppointmentRepository
	services     *repository.ServiceRepository
	stylists     *repository.StylistRepository
	gallery      *repository.GalleryRepository
}

func NewDocumentUoW(
	appointments *repository.AppointmentRepository,
	services *repository.ServiceRepository,
	stylists *repository.StylistRepository,
	gallery *repository.GalleryRepository,
) shared.UnitOfWork {
	return &DocumentUoW{
		appointments: appointments,
		services:     services,
		stylists:     stylists,
		gallery:      gallery,
	}
}

func (u *DocumentUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return fn(ctx, &docTx{uow: u})
}

type docTx struct {
	uow *DocumentUoW
}

func (t *docTx) Appointments() shared.Collection[domappt.Appointment] {
	return t.uow.appointments
}

func (t *docTx) Services() shared.Collection[catalog.Service] {
	return t.uow.services
}

func (t *docTx) Stylists() shared.Collection[catalog.Stylist] {
	return t.uow.stylists
}

func (t *docTx) Gallery() shared.Collection[gallery.Item] {
	return t.uow.gallery
}
