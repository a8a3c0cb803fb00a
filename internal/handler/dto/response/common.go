package response

import (
	"salon-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type PingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type CleanupResponse struct {
	Removed int `json:"removed"`
	Kept    int `json:"kept"`
}

type ReminderResponse struct {
	Date           string `json:"date"`
	Sent           int    `json:"sent"`
	SkippedNoPhone int    `json:"skipped_no_phone"`
	SkippedStatus  int    `json:"skipped_status"`
	Failed         int    `json:"failed"`
	Total          int    `json:"total"`
}

func FromCleanupResult(r *commands.CleanupResult) CleanupResponse {
	return CleanupResponse{Removed: r.Removed, Kept: r.Kept}
}

func FromReminderSummary(s *commands.ReminderSummary) ReminderResponse {
	var res ReminderResponse
	_ = copier.Copy(&res, s)
	return res
}
