package repository

import (
	"log/slog"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra/docstore"
)

type AppointmentRepository = DocumentRepository[domappt.Appointment]

func NewAppointmentRepository(store docstore.Store, logger *slog.Logger) *AppointmentRepository {
	return newDocumentRepository[domappt.Appointment](store, docstore.KeyAppointments, logger)
}
