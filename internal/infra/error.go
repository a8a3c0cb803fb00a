package infra

import (
	"errors"
	"log/slog"

	"salon-booking/internal/pkg/errs"
)

type StorageErrorKind string

const (
	KindStoreFailure StorageErrorKind = "STORE_FAILURE"
	KindEncode       StorageErrorKind = "ENCODE_FAILURE"
	KindFileFailure  StorageErrorKind = "FILE_FAILURE"
)

// StorageError is returned by adapters over the document store and the upload directory.
// It is always marked errs.ErrStorage.
type StorageError struct {
	Kind   StorageErrorKind
	Op     string
	Target string // document key or file name
	err    error
}

func (e *StorageError) Error() string {
	return string(e.Kind) + ": " + e.Op + " " + e.Target + ": " + e.err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.err
}

// StorageErr logs the failure once at the adapter boundary and wraps it.
func StorageErr(logger *slog.Logger, kind StorageErrorKind, op, target string, err error) error {
	if err == nil {
		err = errors.New("unknown failure")
	}
	logger.Error("Storage failure",
		slog.String("kind", string(kind)),
		slog.String("op", op),
		slog.String("target", target),
		slog.String("error", err.Error()),
	)
	return &StorageError{
		Kind:   kind,
		Op:     op,
		Target: target,
		err:    errs.Mark(err, errs.ErrStorage),
	}
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e *StorageError
	return errors.As(err, &e) && e.Kind == kind
}
