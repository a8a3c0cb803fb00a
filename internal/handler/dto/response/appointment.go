package response

import (
	domappt "salon-booking/internal/domain/appointment"

	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                      int64   `json:"id"`
	ServiceID               string  `json:"serviceId"`
	StylistID               string  `json:"stylistId"`
	ServiceName             string  `json:"serviceName"`
	StylistName             string  `json:"stylistName"`
	DateISO                 string  `json:"dateISO"`
	Time                    string  `json:"time"`
	ClientName              string  `json:"clientName"`
	ClientContact           string  `json:"clientContact"`
	ClientContactNormalized string  `json:"clientContactNormalized,omitempty"`
	Price                   float64 `json:"price"`
	Status                  string  `json:"status"`
	LegacyDate              string  `json:"date,omitempty"`
}

func FromAppointment(a domappt.Appointment) AppointmentResponse {
	var res AppointmentResponse
	_ = copier.Copy(&res, &a)
	return res
}

func FromAppointments(items []domappt.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		res = append(res, FromAppointment(a))
	}
	return res
}
