package commands

import (
	"context"
	"log/slog"

	domappt "salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

type BookResult struct {
	Appointment domappt.Appointment
	Outcome     domappt.Outcome
}

func (r BookResult) Created() bool {
	return r.Outcome == domappt.OutcomeCreated
}

type CleanupResult struct {
	Removed int
	Kept    int
}

type AppointmentCommands interface {
	Book(ctx context.Context, req reqdto.CreateAppointmentRequest) (*BookResult, error)
	UpdateStatus(ctx context.Context, id int64, req reqdto.UpdateAppointmentStatusRequest) (*domappt.Appointment, error)
	Cleanup(ctx context.Context, req reqdto.CleanupAppointmentsRequest) (*CleanupResult, error)
}

type appointmentCommandsImpl struct {
	uow    shared.UnitOfWork
	policy domappt.Book
	logger *slog.Logger
}

func NewAppointmentCommands(uow shared.UnitOfWork, policy domappt.Book, logger *slog.Logger) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:    uow,
		policy: policy,
		logger: logger,
	}
}

// Book validates, checks slot capacity and upserts in one unit of work,
// so two concurrent bookings cannot both pass the capacity check.
func (a *appointmentCommandsImpl) Book(ctx context.Context, req reqdto.CreateAppointmentRequest) (*BookResult, error) {
	candidate, err := req.ToDomain()
	if err != nil {
		return nil, markDomainErr(err)
	}

	var result BookResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Appointments().LoadAll(ctx)
		if err != nil {
			return err
		}

		updated, stored, outcome, err := a.policy.Apply(items, candidate)
		if err != nil {
			return markDomainErr(err)
		}

		if err := tx.Appointments().SaveAll(ctx, updated); err != nil {
			return err
		}
		result = BookResult{Appointment: stored, Outcome: outcome}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Appointment booked",
		slog.Int64("id", result.Appointment.ID),
		slog.String("slot", result.Appointment.Slot().String()),
		slog.String("outcome", string(result.Outcome)),
	)
	return &result, nil
}

func (a *appointmentCommandsImpl) UpdateStatus(ctx context.Context, id int64, req reqdto.UpdateAppointmentStatusRequest) (*domappt.Appointment, error) {
	var updated domappt.Appointment
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Appointments().LoadAll(ctx)
		if err != nil {
			return err
		}

		items, appt, err := domappt.SetStatus(items, id, req.Status)
		if err != nil {
			return markDomainErr(err)
		}

		if err := tx.Appointments().SaveAll(ctx, items); err != nil {
			return err
		}
		updated = appt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *appointmentCommandsImpl) Cleanup(ctx context.Context, req reqdto.CleanupAppointmentsRequest) (*CleanupResult, error) {
	cutoff, ok := domappt.ParseDate(req.Before)
	if !ok {
		return nil, errs.Invalid(domappt.ErrInvalidDate, "before %q", req.Before)
	}

	var result CleanupResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Appointments().LoadAll(ctx)
		if err != nil {
			return err
		}

		kept, removed := domappt.SweepBefore(items, cutoff)
		if removed > 0 {
			if err := tx.Appointments().SaveAll(ctx, kept); err != nil {
				return err
			}
		}
		result = CleanupResult{Removed: removed, Kept: len(kept)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Appointments cleaned up",
		slog.String("before", domappt.FormatDate(cutoff)),
		slog.Int("removed", result.Removed),
		slog.Int("kept", result.Kept),
	)
	return &result, nil
}
