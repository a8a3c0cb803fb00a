package appointment

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/catalog"
)

var (
	ErrIncompleteData = errors.New("incomplete data")
	ErrSlotFull       = errors.New("time slot full")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotFound       = errors.New("appointment not found")
	ErrInvalidDate    = errors.New("invalid date")
)

// Appointment is persisted as-is in the appointments document.
type Appointment struct {
	ID                      int64      `json:"id"`
	ServiceID               catalog.ID `json:"serviceId"`
	StylistID               catalog.ID `json:"stylistId"`
	ServiceName             string     `json:"serviceName"`
	StylistName             string     `json:"stylistName"`
	DateISO                 string     `json:"dateISO"`
	Time                    string     `json:"time"`
	ClientName              string     `json:"clientName"`
	ClientContact           string     `json:"clientContact"`
	ClientContactNormalized string     `json:"clientContactNormalized,omitempty"`
	Price                   Price      `json:"price"`
	Status                  Status     `json:"status"`

	// LegacyDate is only read; records written before dateISO existed carry it.
	LegacyDate string `json:"date,omitempty"`
}

// UnmarshalJSON normalizes the stored status, so legacy aliases and records
// without a status read back as one of the three known values.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	type stored Appointment
	var s stored
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s.Status = NormalizeStatus(string(s.Status))
	*a = Appointment(s)
	return nil
}

// Validate checks the fields a booking cannot be stored without.
// ID and Price presence is enforced at the request boundary.
func (a Appointment) Validate() error {
	required := []string{
		string(a.ServiceID),
		string(a.StylistID),
		a.ServiceName,
		a.StylistName,
		a.DateISO,
		a.Time,
		a.ClientName,
		a.ClientContact,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrIncompleteData
		}
	}
	return nil
}

// Stored records may predate normalisation, so status is compared after it.
func (a Appointment) IsCancelled() bool {
	return NormalizeStatus(string(a.Status)) == StatusCancelled
}

func (a Appointment) IsConfirmed() bool {
	return NormalizeStatus(string(a.Status)) == StatusConfirmed
}

func (a Appointment) Slot() Slot {
	return SlotOf(a.DateISO, a.Time)
}

// Day parses dateISO, falling back to the legacy date field.
func (a Appointment) Day() (time.Time, bool) {
	if d, ok := ParseDate(a.DateISO); ok {
		return d, true
	}
	if a.LegacyDate != "" {
		return ParseDate(a.LegacyDate)
	}
	return time.Time{}, false
}
