//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/gallery"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const maxUploadBytes = 1 << 10

func TestGalleryCommands_Upload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 4, 15, 0, 0, 0, time.UTC)

	t.Run("png is stored and appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t)
		uploads := commandsmock.NewMockUploadStorage(ctrl)
		cmds := commands.NewGalleryCommands(h.uow, uploads, maxUploadBytes, clock.NewMockClock(now), h.logger)

		png := testutil.PNGBytes()
		var saved []byte
		uploads.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filename string, r io.Reader) (string, error) {
				assert.True(t, strings.HasSuffix(filename, ".png"))
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				saved = b
				return "http://localhost:8080/uploads/" + filename, nil
			})

		item, err := cmds.Upload(ctx,
			commands.UploadFile{Size: int64(len(png)), Content: bytes.NewReader(png)},
			reqdto.UploadGalleryItemRequest{Title: " Balayage ", Description: "antes y después"},
		)
		require.NoError(t, err)
		assert.Equal(t, png, saved)
		assert.Equal(t, "Balayage", item.Title)
		assert.Equal(t, "http://localhost:8080/uploads/"+item.ID+".png", item.URL)
		require.NotNil(t, item.CreatedAt)
		assert.True(t, now.Equal(*item.CreatedAt))

		stored, err := h.gallery.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, item.ID, stored[0].ID)
	})

	t.Run("non-image content is rejected before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t)
		uploads := commandsmock.NewMockUploadStorage(ctrl)
		cmds := commands.NewGalleryCommands(h.uow, uploads, maxUploadBytes, clock.NewMockClock(now), h.logger)

		body := []byte("just some text, not an image")
		_, err := cmds.Upload(ctx, commands.UploadFile{Size: int64(len(body)), Content: bytes.NewReader(body)}, reqdto.UploadGalleryItemRequest{})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, gallery.ErrInvalidContentType)
	})

	t.Run("oversized file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t)
		uploads := commandsmock.NewMockUploadStorage(ctrl)
		cmds := commands.NewGalleryCommands(h.uow, uploads, maxUploadBytes, clock.NewMockClock(now), h.logger)

		_, err := cmds.Upload(ctx, commands.UploadFile{Size: maxUploadBytes + 1, Content: bytes.NewReader(testutil.PNGBytes())}, reqdto.UploadGalleryItemRequest{})
		assert.True(t, errs.Is(err, errs.ErrTooLarge))
	})

	t.Run("empty file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newHarness(t)
		uploads := commandsmock.NewMockUploadStorage(ctrl)
		cmds := commands.NewGalleryCommands(h.uow, uploads, maxUploadBytes, clock.NewMockClock(now), h.logger)

		_, err := cmds.Upload(ctx, commands.UploadFile{Size: 0, Content: bytes.NewReader(nil)}, reqdto.UploadGalleryItemRequest{})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestGalleryCommands_UpsertItem(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	cmds := commands.NewGalleryCommands(h.uow, nil, maxUploadBytes, clock.NewMockClock(time.Now()), h.logger)

	_, err := cmds.ReplaceItems(ctx, []reqdto.GalleryItemRequest{
		{ID: "a", URL: "/uploads/a.jpg"},
		{ID: "b", URL: "/uploads/b.jpg"},
	})
	require.NoError(t, err)

	_, replaced, err := cmds.UpsertItem(ctx, reqdto.GalleryItemRequest{ID: "a", URL: "/uploads/a2.jpg", Title: "nuevo"})
	require.NoError(t, err)
	assert.True(t, replaced)

	_, replaced, err = cmds.UpsertItem(ctx, reqdto.GalleryItemRequest{ID: "c", URL: "/uploads/c.jpg"})
	require.NoError(t, err)
	assert.False(t, replaced)

	stored, err := h.gallery.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "/uploads/a2.jpg", stored[0].URL)
	assert.Equal(t, "c", stored[2].ID)

	_, _, err = cmds.UpsertItem(ctx, reqdto.GalleryItemRequest{ID: "d"})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
