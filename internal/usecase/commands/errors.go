package commands

import (
	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/gallery"
	"salon-booking/internal/pkg/errs"
)

// markDomainErr tags domain failures with the shared sentinel the handler maps to a status.
func markDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, domappt.ErrSlotFull):
		return errs.Mark(err, errs.ErrSlotFull)
	case errs.Is(err, domappt.ErrNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case errs.Is(err, gallery.ErrFileTooLarge):
		return errs.Mark(err, errs.ErrTooLarge)
	case errs.Is(err, domappt.ErrIncompleteData),
		errs.Is(err, domappt.ErrInvalidStatus),
		errs.Is(err, domappt.ErrInvalidDate),
		errs.Is(err, catalog.ErrMissingID),
		errs.Is(err, catalog.ErrMissingName),
		errs.Is(err, gallery.ErrMissingID),
		errs.Is(err, gallery.ErrMissingURL),
		errs.Is(err, gallery.ErrEmptyFile),
		errs.Is(err, gallery.ErrInvalidContentType):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return err
	}
}
