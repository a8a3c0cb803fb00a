//go:build unit

package appointment_test

import (
	"testing"
	"time"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/phone"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook() domappt.Book {
	return domappt.Book{Capacity: 2, Normalize: phone.Normalize}
}

func TestBookApply(t *testing.T) {
	t.Run("new booking is appended with derived fields", func(t *testing.T) {
		candidate := builder.NewAppointmentBuilder().WithID(10).BuildDomain()

		items, stored, outcome, err := newBook().Apply(nil, candidate)
		require.NoError(t, err)

		assert.Equal(t, domappt.OutcomeCreated, outcome)
		assert.Len(t, items, 1)
		assert.Equal(t, domappt.StatusPending, stored.Status)
		assert.Equal(t, "5491159121384", stored.ClientContactNormalized)
		assert.Equal(t, "11 5912-1384", stored.ClientContact)
	})

	t.Run("status is normalized", func(t *testing.T) {
		cases := map[string]domappt.Status{
			"":           domappt.StatusPending,
			"bogus":      domappt.StatusPending,
			"confirmed":  domappt.StatusConfirmed,
			"Confirmado": domappt.StatusConfirmed,
			"cancelado":  domappt.StatusCancelled,
		}
		for raw, want := range cases {
			candidate := builder.NewAppointmentBuilder().WithStatus(raw).BuildDomain()
			_, stored, _, err := newBook().Apply(nil, candidate)
			require.NoError(t, err, raw)
			assert.Equal(t, want, stored.Status, raw)
			assert.True(t, stored.Status.IsValid())
		}
	})

	t.Run("missing required field fails without mutation", func(t *testing.T) {
		existing := []domappt.Appointment{builder.NewAppointmentBuilder().WithID(1).BuildDomain()}
		candidate := builder.NewAppointmentBuilder().WithID(2).With(func(b *builder.AppointmentBuilder) {
			b.ClientName = ""
		}).BuildDomain()

		items, _, _, err := newBook().Apply(existing, candidate)
		assert.ErrorIs(t, err, domappt.ErrIncompleteData)
		assert.Nil(t, items)
		assert.Len(t, existing, 1)
	})

	t.Run("third active booking in a slot is rejected", func(t *testing.T) {
		var items []domappt.Appointment
		var err error
		for id := int64(1); id <= 2; id++ {
			candidate := builder.NewAppointmentBuilder().WithID(id).BuildDomain()
			items, _, _, err = newBook().Apply(items, candidate)
			require.NoError(t, err)
		}

		third := builder.NewAppointmentBuilder().WithID(3).WithSlot("2025-12-04", "14:00").BuildDomain()
		_, _, _, err = newBook().Apply(items, third)
		assert.ErrorIs(t, err, domappt.ErrSlotFull)

		// a different time on the same day is free
		other := builder.NewAppointmentBuilder().WithID(3).WithSlot("2025-12-04", "15:00").BuildDomain()
		_, _, _, err = newBook().Apply(items, other)
		assert.NoError(t, err)
	})

	t.Run("cancelled bookings do not count", func(t *testing.T) {
		items := []domappt.Appointment{
			builder.NewAppointmentBuilder().WithID(1).WithStatus("cancelled").BuildDomain(),
			builder.NewAppointmentBuilder().WithID(2).WithStatus("pending").BuildDomain(),
		}
		candidate := builder.NewAppointmentBuilder().WithID(3).BuildDomain()

		_, _, _, err := newBook().Apply(items, candidate)
		assert.NoError(t, err)
	})

	t.Run("upsert replaces in place keeping order", func(t *testing.T) {
		items := []domappt.Appointment{
			builder.NewAppointmentBuilder().WithID(1).WithSlot("2025-12-01", "10:00").BuildDomain(),
			builder.NewAppointmentBuilder().WithID(2).WithSlot("2025-12-02", "10:00").BuildDomain(),
			builder.NewAppointmentBuilder().WithID(3).WithSlot("2025-12-03", "10:00").BuildDomain(),
		}
		replacement := builder.NewAppointmentBuilder().WithID(2).WithSlot("2025-12-02", "11:00").BuildDomain()

		out, stored, outcome, err := newBook().Apply(items, replacement)
		require.NoError(t, err)

		assert.Equal(t, domappt.OutcomeReplaced, outcome)
		assert.Len(t, out, 3)
		ids := []int64{out[0].ID, out[1].ID, out[2].ID}
		if diff := cmp.Diff([]int64{1, 2, 3}, ids); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, stored, out[1])
		assert.Equal(t, "10:00", items[1].Time, "input slice must not be modified")
	})

	t.Run("replacing a record does not count it against its own slot", func(t *testing.T) {
		items := []domappt.Appointment{
			builder.NewAppointmentBuilder().WithID(1).BuildDomain(),
			builder.NewAppointmentBuilder().WithID(2).BuildDomain(),
		}
		edited := builder.NewAppointmentBuilder().WithID(2).WithStatus("confirmed").BuildDomain()

		_, stored, outcome, err := newBook().Apply(items, edited)
		require.NoError(t, err)
		assert.Equal(t, domappt.OutcomeReplaced, outcome)
		assert.Equal(t, domappt.StatusConfirmed, stored.Status)
	})

	t.Run("contact without digits leaves normalized empty", func(t *testing.T) {
		candidate := builder.NewAppointmentBuilder().WithContact("ana@example.com").BuildDomain()
		_, stored, _, err := newBook().Apply(nil, candidate)
		require.NoError(t, err)
		assert.Empty(t, stored.ClientContactNormalized)
	})
}

func TestSetStatus(t *testing.T) {
	items := []domappt.Appointment{builder.NewAppointmentBuilder().WithID(7).BuildDomain()}

	_, updated, err := domappt.SetStatus(items, 7, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, domappt.StatusConfirmed, updated.Status)
	assert.Equal(t, domappt.StatusConfirmed, items[0].Status)

	_, _, err = domappt.SetStatus(items, 7, "done")
	assert.ErrorIs(t, err, domappt.ErrInvalidStatus)

	_, _, err = domappt.SetStatus(items, 99, "confirmed")
	assert.ErrorIs(t, err, domappt.ErrNotFound)

	_, _, err = domappt.SetStatus(items, 99, "done")
	assert.ErrorIs(t, err, domappt.ErrNotFound)
}

func TestSweepBefore(t *testing.T) {
	cutoff, ok := domappt.ParseDate("2025-11-01")
	require.True(t, ok)

	items := []domappt.Appointment{
		builder.NewAppointmentBuilder().WithID(1).WithSlot("2025-10-15", "10:00").BuildDomain(),
		builder.NewAppointmentBuilder().WithID(2).WithSlot("2025-11-01T09:00:00-03:00", "10:00").BuildDomain(),
		builder.NewAppointmentBuilder().WithID(3).WithSlot("someday", "10:00").BuildDomain(),
		builder.NewAppointmentBuilder().WithID(4).WithSlot("", "10:00").BuildDomain(),
	}
	items[3].LegacyDate = "2025-09-30"

	kept, removed := domappt.SweepBefore(items, cutoff)
	assert.Equal(t, 2, removed)
	require.Len(t, kept, 2)
	assert.Equal(t, int64(2), kept[0].ID)
	assert.Equal(t, int64(3), kept[1].ID)
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		raw    string
		want   time.Time
		wantOK bool
	}{
		{raw: "2025-12-04", want: time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "2025-12-04T18:30:00.000Z", want: time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "2025-12-04T23:30:00-03:00", want: time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: " 2025-12-04 10:00", want: time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "2025-12-04X", wantOK: false},
		{raw: "04/12/2025", wantOK: false},
		{raw: "2025-13-01", wantOK: false},
		{raw: "", wantOK: false},
	}
	for _, tc := range cases {
		got, ok := domappt.ParseDate(tc.raw)
		assert.Equal(t, tc.wantOK, ok, tc.raw)
		if tc.wantOK {
			assert.True(t, tc.want.Equal(got), tc.raw)
		}
	}
}

func TestSlotOf(t *testing.T) {
	assert.Equal(t, domappt.Slot{Day: "2025-12-04", Time: "14:00"}, domappt.SlotOf("2025-12-04T03:00:00.000Z", " 14:00"))
	assert.Equal(t, "2025-12-04 14:00", domappt.SlotOf("2025-12-04", "14:00").String())
}
