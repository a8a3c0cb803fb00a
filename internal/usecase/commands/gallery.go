package commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"salon-booking/internal/domain/gallery"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// UploadFile is a file part received from a multipart form.
type UploadFile struct {
	Size    int64
	Content io.Reader
}

type GalleryCommands interface {
	ReplaceItems(ctx context.Context, reqs []reqdto.GalleryItemRequest) ([]gallery.Item, error)
	// UpsertItem returns true when an item with the same id was replaced.
	UpsertItem(ctx context.Context, req reqdto.GalleryItemRequest) (*gallery.Item, bool, error)
	Upload(ctx context.Context, file UploadFile, req reqdto.UploadGalleryItemRequest) (*gallery.Item, error)
}

type galleryCommandsImpl struct {
	uow      shared.UnitOfWork
	uploads  UploadStorage
	maxBytes int64
	clock    clock.Clock
	logger   *slog.Logger
}

func NewGalleryCommands(uow shared.UnitOfWork, uploads UploadStorage, maxBytes int64, clk clock.Clock, logger *slog.Logger) GalleryCommands {
	return &galleryCommandsImpl{
		uow:      uow,
		uploads:  uploads,
		maxBytes: maxBytes,
		clock:    clk,
		logger:   logger,
	}
}

func (g *galleryCommandsImpl) ReplaceItems(ctx context.Context, reqs []reqdto.GalleryItemRequest) ([]gallery.Item, error) {
	items, err := reqdto.GalleryItemsToDomain(reqs)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Gallery().SaveAll(ctx, items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (g *galleryCommandsImpl) UpsertItem(ctx context.Context, req reqdto.GalleryItemRequest) (*gallery.Item, bool, error) {
	item, err := req.ToDomain()
	if err != nil {
		return nil, false, markDomainErr(err)
	}

	var replaced bool
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Gallery().LoadAll(ctx)
		if err != nil {
			return err
		}
		items, replaced = gallery.Upsert(items, item)
		return tx.Gallery().SaveAll(ctx, items)
	})
	if err != nil {
		return nil, false, err
	}
	return &item, replaced, nil
}

// Upload stores the file first and appends the gallery entry afterwards;
// a failed append leaves an orphan file, never an entry without a file.
func (g *galleryCommandsImpl) Upload(ctx context.Context, file UploadFile, req reqdto.UploadGalleryItemRequest) (*gallery.Item, error) {
	if err := gallery.CheckSize(file.Size, g.maxBytes); err != nil {
		return nil, markDomainErr(err)
	}

	content := bufio.NewReaderSize(file.Content, gallery.SniffLen)
	head, err := content.Peek(gallery.SniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, errs.Wrap(err, "failed to read upload")
	}
	_, ext, err := gallery.DetectImageType(head)
	if err != nil {
		return nil, markDomainErr(err)
	}

	id := uuid.New().String()
	url, err := g.uploads.Save(ctx, id+ext, io.LimitReader(content, g.maxBytes))
	if err != nil {
		return nil, err
	}

	now := g.clock.Now().UTC()
	item := gallery.Item{
		ID:          id,
		URL:         url,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   &now,
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Gallery().LoadAll(ctx)
		if err != nil {
			return err
		}
		return tx.Gallery().SaveAll(ctx, append(items, item))
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("Gallery image uploaded",
		slog.String("id", item.ID),
		slog.String("url", item.URL),
	)
	return &item, nil
}
