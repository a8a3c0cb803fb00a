package request

import "salon-booking/internal/pkg/ptr"

type SendRemindersRequest struct {
	Date          *string `json:"date"`
	OnlyConfirmed *bool   `json:"only_confirmed"`
}

func (r SendRemindersRequest) DateOrEmpty() string {
	return ptr.ValueOr(r.Date, "")
}

func (r SendRemindersRequest) OnlyConfirmedOrDefault() bool {
	return ptr.ValueOr(r.OnlyConfirmed, false)
}
