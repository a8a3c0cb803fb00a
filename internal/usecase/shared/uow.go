package shared

import (
	"context"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/gallery"
)

type UnitOfWork interface {
	// Within: serialized load-check-save cycle; no other Within call interleaves with fn
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() Collection[domappt.Appointment]
	Services() Collection[catalog.Service]
	Stylists() Collection[catalog.Stylist]
	Gallery() Collection[gallery.Item]
}

// Collection is a whole-document repository: full read, full rewrite.
type Collection[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, items []T) error
}
