package request

import (
	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/ptr"
)

// CreateAppointmentRequest carries a booking candidate. Presence of every
// required field is checked in ToDomain so a missing key yields "incomplete data".
type CreateAppointmentRequest struct {
	ID            *int64         `json:"id"`
	ServiceID     catalog.ID     `json:"serviceId"`
	StylistID     catalog.ID     `json:"stylistId"`
	ServiceName   string         `json:"serviceName"`
	StylistName   string         `json:"stylistName"`
	DateISO       string         `json:"dateISO"`
	Time          string         `json:"time"`
	ClientName    string         `json:"clientName"`
	ClientContact string         `json:"clientContact"`
	Price         *domappt.Price `json:"price"`
	Status        *string        `json:"status,omitempty"`
}

func (r CreateAppointmentRequest) ToDomain() (domappt.Appointment, error) {
	if r.ID == nil || r.Price == nil {
		return domappt.Appointment{}, domappt.ErrIncompleteData
	}
	a := domappt.Appointment{
		ID:            *r.ID,
		ServiceID:     r.ServiceID,
		StylistID:     r.StylistID,
		ServiceName:   r.ServiceName,
		StylistName:   r.StylistName,
		DateISO:       r.DateISO,
		Time:          r.Time,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Price:         *r.Price,
		Status:        domappt.Status(ptr.ValueOr(r.Status, "")),
	}
	if err := a.Validate(); err != nil {
		return domappt.Appointment{}, err
	}
	return a, nil
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

type CleanupAppointmentsRequest struct {
	Before string `json:"before" binding:"required"`
}
