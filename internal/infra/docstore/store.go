// Package docstore persists whole JSON documents by key. Every write
// replaces the full document; there is no partial update.
package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

type Store interface {
	// Get returns ErrNotFound when key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Document keys
const (
	KeyAppointments = "appointments"
	KeyServices     = "services"
	KeyStylists     = "stylists"
	KeyGallery      = "gallery"
)
