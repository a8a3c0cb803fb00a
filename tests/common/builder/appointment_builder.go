//go:build unit || e2e

package builder

import (
	domappt "salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/ptr"
)

type AppointmentBuilder struct {
	ID            int64
	ServiceID     string
	StylistID     string
	ServiceName   string
	StylistName   string
	DateISO       string
	Time          string
	ClientName    string
	ClientContact string
	Price         float64
	Status        string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:            1,
		ServiceID:     "1",
		StylistID:     "2",
		ServiceName:   "Corte",
		StylistName:   "Vero",
		DateISO:       "2025-12-04T00:00:00.000Z",
		Time:          "14:00",
		ClientName:    "Ana",
		ClientContact: "11 5912-1384",
		Price:         8000,
		Status:        "",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithID(id int64) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithSlot(dateISO, time string) *AppointmentBuilder {
	b.DateISO = dateISO
	b.Time = time
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithContact(contact string) *AppointmentBuilder {
	b.ClientContact = contact
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() domappt.Appointment {
	return domappt.Appointment{
		ID:            b.ID,
		ServiceID:     catalogID(b.ServiceID),
		StylistID:     catalogID(b.StylistID),
		ServiceName:   b.ServiceName,
		StylistName:   b.StylistName,
		DateISO:       b.DateISO,
		Time:          b.Time,
		ClientName:    b.ClientName,
		ClientContact: b.ClientContact,
		Price:         domappt.Price(b.Price),
		Status:        domappt.Status(b.Status),
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	req := reqdto.CreateAppointmentRequest{
		ID:            ptr.Of(b.ID),
		ServiceID:     catalogID(b.ServiceID),
		StylistID:     catalogID(b.StylistID),
		ServiceName:   b.ServiceName,
		StylistName:   b.StylistName,
		DateISO:       b.DateISO,
		Time:          b.Time,
		ClientName:    b.ClientName,
		ClientContact: b.ClientContact,
		Price:         ptr.Of(domappt.Price(b.Price)),
	}
	if b.Status != "" {
		req.Status = ptr.Of(b.Status)
	}
	return req
}
