package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domappt "salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

const reminderTemplate = "Hola {clientName}! Te recordamos tu turno de {serviceName} hoy a las {time}. " +
	"Si no podés asistir, avisanos respondiendo este mensaje."

type ReminderSummary struct {
	Date           string
	Sent           int
	SkippedNoPhone int
	SkippedStatus  int
	Failed         int
	// Total counts records dated on Date, whatever happened to them.
	Total int
}

type ReminderCommands interface {
	SendWhatsAppReminders(ctx context.Context, req reqdto.SendRemindersRequest) (*ReminderSummary, error)
}

type reminderCommandsImpl struct {
	uow       shared.UnitOfWork
	sender    MessageSender
	normalize func(raw string) (string, bool)
	clock     clock.Clock
	location  *time.Location
	logger    *slog.Logger
}

func NewReminderCommands(
	uow shared.UnitOfWork,
	sender MessageSender,
	normalize func(raw string) (string, bool),
	clk clock.Clock,
	location *time.Location,
	logger *slog.Logger,
) ReminderCommands {
	return &reminderCommandsImpl{
		uow:       uow,
		sender:    sender,
		normalize: normalize,
		clock:     clk,
		location:  location,
		logger:    logger,
	}
}

func (r *reminderCommandsImpl) SendWhatsAppReminders(ctx context.Context, req reqdto.SendRemindersRequest) (*ReminderSummary, error) {
	target, err := r.targetDate(req.DateOrEmpty())
	if err != nil {
		return nil, err
	}
	onlyConfirmed := req.OnlyConfirmedOrDefault()

	// Snapshot under the lock; sending happens outside it so slow gateway
	// calls never block bookings.
	var items []domappt.Appointment
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		items, err = tx.Appointments().LoadAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	summary := &ReminderSummary{Date: domappt.FormatDate(target)}
	for _, appt := range items {
		day, ok := appt.Day()
		if !ok || !day.Equal(target) {
			continue
		}
		summary.Total++

		if appt.IsCancelled() || (onlyConfirmed && !appt.IsConfirmed()) {
			summary.SkippedStatus++
			continue
		}

		to, ok := r.resolvePhone(appt)
		if !ok {
			summary.SkippedNoPhone++
			continue
		}

		if err := r.sender.Send(ctx, to, reminderMessage(appt)); err != nil {
			summary.Failed++
			r.logger.Warn("Reminder not sent",
				slog.Int64("appointment_id", appt.ID),
				slog.String("to", to),
				slog.String("error", err.Error()),
			)
			continue
		}
		summary.Sent++
	}

	r.logger.Info("Reminders dispatched",
		slog.String("date", summary.Date),
		slog.Bool("only_confirmed", onlyConfirmed),
		slog.Int("sent", summary.Sent),
		slog.Int("skipped_no_phone", summary.SkippedNoPhone),
		slog.Int("skipped_status", summary.SkippedStatus),
		slog.Int("failed", summary.Failed),
		slog.Int("total", summary.Total),
	)
	return summary, nil
}

func (r *reminderCommandsImpl) targetDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return clock.Today(r.clock, r.location), nil
	}
	d, ok := domappt.ParseDate(raw)
	if !ok {
		return time.Time{}, errs.Invalid(domappt.ErrInvalidDate, "date %q", raw)
	}
	return d, nil
}

func (r *reminderCommandsImpl) resolvePhone(appt domappt.Appointment) (string, bool) {
	if appt.ClientContactNormalized != "" {
		return appt.ClientContactNormalized, true
	}
	return r.normalize(appt.ClientContact)
}

func reminderMessage(appt domappt.Appointment) string {
	return strings.NewReplacer(
		"{clientName}", appt.ClientName,
		"{serviceName}", appt.ServiceName,
		"{time}", appt.Time,
	).Replace(reminderTemplate)
}
