//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/docstore"
	"salon-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func (m *MockStore) Put(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		body      []byte
		storeErr  error
		wantLen   int
		wantError bool
	}{
		{name: "missing document is empty", storeErr: docstore.ErrNotFound, wantLen: 0},
		{name: "malformed document is empty", body: []byte(`{"not":"a list"`), wantLen: 0},
		{name: "object instead of array is empty", body: []byte(`{"id":1}`), wantLen: 0},
		{name: "null document is empty", body: []byte(`null`), wantLen: 0},
		{name: "valid document", body: []byte(`[{"id":1,"status":"pending"},{"id":2}]`), wantLen: 2},
		{name: "undecodable records are left out", body: []byte(`[{"id":1},{"id":"x"},null,{"id":2,"price":"1500"}]`), wantLen: 2},
		{name: "store failure surfaces", storeErr: errors.New("disk gone"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("Get", ctx, docstore.KeyAppointments).Return(tt.body, tt.storeErr)

			repo := NewAppointmentRepository(store, discardLogger())
			items, err := repo.LoadAll(ctx)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
				assert.True(t, errs.Is(err, errs.ErrStorage))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
			store.AssertExpectations(t)
		})
	}
}

func TestSaveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("nil collection is written as empty array", func(t *testing.T) {
		store := new(MockStore)
		store.On("Get", ctx, docstore.KeyAppointments).Return(nil, docstore.ErrNotFound)
		store.On("Put", ctx, docstore.KeyAppointments, []byte("[]")).Return(nil)

		repo := NewAppointmentRepository(store, discardLogger())
		require.NoError(t, repo.SaveAll(ctx, nil))
		store.AssertExpectations(t)
	})

	t.Run("round trip through memory store", func(t *testing.T) {
		repo := NewAppointmentRepository(docstore.NewMemoryStore(), discardLogger())
		in := []domappt.Appointment{{ID: 1, ClientName: "Ana", Status: domappt.StatusConfirmed}}

		require.NoError(t, repo.SaveAll(ctx, in))
		out, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		store := new(MockStore)
		store.On("Get", ctx, docstore.KeyGallery).Return(nil, docstore.ErrNotFound)
		store.On("Put", ctx, docstore.KeyGallery, mock.Anything).Return(errors.New("read-only fs"))

		repo := NewGalleryRepository(store, discardLogger())
		err := repo.SaveAll(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
		assert.ErrorContains(t, err, "read-only fs")
	})

	t.Run("load failure aborts the write", func(t *testing.T) {
		store := new(MockStore)
		store.On("Get", ctx, docstore.KeyGallery).Return(nil, errors.New("disk gone"))

		repo := NewGalleryRepository(store, discardLogger())
		err := repo.SaveAll(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("undecodable records survive a write", func(t *testing.T) {
		store := docstore.NewMemoryStore()
		require.NoError(t, store.Put(ctx, docstore.KeyAppointments, []byte(`[
			{"id":1,"serviceId":1,"stylistId":2,"dateISO":"2025-12-04","time":"10:00","price":1500,"status":"pendiente"},
			{"id":"legacy-7","clientName":"Bea","price":"a convenir"},
			{"id":2,"serviceId":"1","stylistId":"2","dateISO":"2025-12-04","time":"11:00","price":"1500","status":"confirmado"}
		]`)))
		repo := NewAppointmentRepository(store, discardLogger())

		items, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, domappt.Price(1500), items[1].Price)

		items = append(items, domappt.Appointment{ID: 3, ClientName: "Ana", Status: domappt.StatusPending})
		require.NoError(t, repo.SaveAll(ctx, items))

		body, err := store.Get(ctx, docstore.KeyAppointments)
		require.NoError(t, err)
		var stored []map[string]any
		require.NoError(t, json.Unmarshal(body, &stored))
		require.Len(t, stored, 4)
		assert.Equal(t, []any{1.0, 2.0, 3.0, "legacy-7"}, []any{stored[0]["id"], stored[1]["id"], stored[2]["id"], stored[3]["id"]})
		assert.Equal(t, "a convenir", stored[3]["price"])
		assert.Equal(t, "Bea", stored[3]["clientName"])
	})
}

func TestLoadAll_LegacyStatus(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, docstore.KeyAppointments,
		[]byte(`[{"id":1,"status":"pendiente"},{"id":2,"status":"Confirmado"},{"id":3,"status":"cancelado"},{"id":4},{"id":5,"status":"??"}]`)))

	items, err := NewAppointmentRepository(store, discardLogger()).LoadAll(ctx)
	require.NoError(t, err)

	got := make([]domappt.Status, 0, len(items))
	for _, a := range items {
		got = append(got, a.Status)
	}
	assert.Equal(t, []domappt.Status{
		domappt.StatusPending,
		domappt.StatusConfirmed,
		domappt.StatusCancelled,
		domappt.StatusPending,
		domappt.StatusPending,
	}, got)
}
