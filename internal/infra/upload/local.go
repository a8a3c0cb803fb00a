// Package upload keeps gallery images on local disk, served back under PublicPath.
package upload

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
)

// PublicPath is the URL prefix the router serves the upload directory under.
const PublicPath = "/uploads"

var ErrInvalidFilename = errs.New("invalid upload filename")

type LocalStorage struct {
	dir     string
	baseURL string
	logger  *slog.Logger
}

func NewLocalStorage(dir, publicBaseURL string, logger *slog.Logger) *LocalStorage {
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:  logger,
	}
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes r to dir/filename and returns its public URL. A partially
// written file is removed on failure.
func (s *LocalStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrInvalidFilename
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", infra.StorageErr(s.logger, infra.KindFileFailure, "mkdir", s.dir, err)
	}

	path := filepath.Join(s.dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", infra.StorageErr(s.logger, infra.KindFileFailure, "create", filename, err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", infra.StorageErr(s.logger, infra.KindFileFailure, "write", filename, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", infra.StorageErr(s.logger, infra.KindFileFailure, "close", filename, err)
	}

	return s.baseURL + PublicPath + "/" + filename, nil
}
