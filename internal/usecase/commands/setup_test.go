//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/phone"
	"salon-booking/internal/infra/docstore"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

type harness struct {
	store        *docstore.MemoryStore
	appointments *repository.AppointmentRepository
	services     *repository.ServiceRepository
	stylists     *repository.StylistRepository
	gallery      *repository.GalleryRepository
	uow          shared.UnitOfWork
	logger       *slog.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docstore.NewMemoryStore()

	h := &harness{
		store:        store,
		appointments: repository.NewAppointmentRepository(store, logger),
		services:     repository.NewServiceRepository(store, logger),
		stylists:     repository.NewStylistRepository(store, logger),
		gallery:      repository.NewGalleryRepository(store, logger),
		logger:       logger,
	}
	h.uow = uow.NewDocumentUoW(h.appointments, h.services, h.stylists, h.gallery)
	return h
}

func (h *harness) policy() domappt.Book {
	return domappt.Book{Capacity: 2, Normalize: phone.Normalize}
}

func (h *harness) seedAppointments(t *testing.T, items ...domappt.Appointment) {
	t.Helper()
	require.NoError(t, h.appointments.SaveAll(context.Background(), items))
}

func (h *harness) storedAppointments(t *testing.T) []domappt.Appointment {
	t.Helper()
	items, err := h.appointments.LoadAll(context.Background())
	require.NoError(t, err)
	return items
}
