package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/docstore"
)

// DocumentRepository loads and saves one collection stored as a JSON array document.
type DocumentRepository[T any] struct {
	store  docstore.Store
	key    string
	logger *slog.Logger
}

func newDocumentRepository[T any](store docstore.Store, key string, logger *slog.Logger) *DocumentRepository[T] {
	return &DocumentRepository[T]{store: store, key: key, logger: logger}
}

// LoadAll returns the whole collection. A missing or malformed document is
// treated as an empty collection; only store I/O failures are returned.
// Records that do not decode into T are left out and logged.
func (r *DocumentRepository[T]) LoadAll(ctx context.Context) ([]T, error) {
	items, _, err := r.load(ctx, slog.LevelWarn)
	return items, err
}

// SaveAll rewrites the whole collection. Stored records that LoadAll could
// not decode are appended unchanged, so a write never drops data it never saw.
func (r *DocumentRepository[T]) SaveAll(ctx context.Context, items []T) error {
	_, held, err := r.load(ctx, slog.LevelDebug)
	if err != nil {
		return err
	}

	out := make([]json.RawMessage, 0, len(items)+len(held))
	for _, item := range items {
		el, err := json.Marshal(item)
		if err != nil {
			return infra.StorageErr(r.logger, infra.KindEncode, "encode", r.key, err)
		}
		out = append(out, el)
	}
	out = append(out, held...)

	body, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return infra.StorageErr(r.logger, infra.KindEncode, "encode", r.key, err)
	}
	if err := r.store.Put(ctx, r.key, body); err != nil {
		return infra.StorageErr(r.logger, infra.KindStoreFailure, "save", r.key, err)
	}
	return nil
}

// load decodes the document element by element. held carries the raw
// elements that did not decode.
func (r *DocumentRepository[T]) load(ctx context.Context, level slog.Level) (items []T, held []json.RawMessage, err error) {
	body, err := r.store.Get(ctx, r.key)
	if errors.Is(err, docstore.ErrNotFound) {
		return []T{}, nil, nil
	}
	if err != nil {
		return nil, nil, infra.StorageErr(r.logger, infra.KindStoreFailure, "load", r.key, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		r.logger.Log(ctx, level, "Malformed document, falling back to empty collection",
			slog.String("key", r.key),
			slog.String("error", err.Error()),
		)
		return []T{}, nil, nil
	}

	items = make([]T, 0, len(raw))
	for i, el := range raw {
		var item T
		if bytes.Equal(bytes.TrimSpace(el), []byte("null")) {
			held = append(held, el)
			continue
		}
		if err := json.Unmarshal(el, &item); err != nil {
			r.logger.Log(ctx, level, "Undecodable record left as stored",
				slog.String("key", r.key),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			held = append(held, el)
			continue
		}
		items = append(items, item)
	}
	return items, held, nil
}
