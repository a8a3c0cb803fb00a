package appointment

import "time"

type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeReplaced Outcome = "replaced"
)

type Book struct {
	Capacity  int
	Normalize func(raw string) (string, bool)
}

// Apply validates candidate against items and returns the new collection.
// items is not modified when an error is returned.
func (b Book) Apply(items []Appointment, candidate Appointment) ([]Appointment, Appointment, Outcome, error) {
	if err := candidate.Validate(); err != nil {
		return nil, Appointment{}, "", err
	}

	candidate.Status = NormalizeStatus(string(candidate.Status))
	candidate.ClientContactNormalized = ""
	if b.Normalize != nil {
		if normalized, ok := b.Normalize(candidate.ClientContact); ok {
			candidate.ClientContactNormalized = normalized
		}
	}

	if !candidate.IsCancelled() && ActiveInSlot(items, candidate.Slot(), candidate.ID) >= b.Capacity {
		return nil, Appointment{}, "", ErrSlotFull
	}

	for i := range items {
		if items[i].ID == candidate.ID {
			out := make([]Appointment, len(items))
			copy(out, items)
			out[i] = candidate
			return out, candidate, OutcomeReplaced, nil
		}
	}

	out := make([]Appointment, len(items), len(items)+1)
	copy(out, items)
	return append(out, candidate), candidate, OutcomeCreated, nil
}

// SetStatus changes the status of the record with id. An unknown id is
// reported before an invalid status.
func SetStatus(items []Appointment, id int64, raw string) ([]Appointment, Appointment, error) {
	for i := range items {
		if items[i].ID != id {
			continue
		}
		status, ok := ParseStatus(raw)
		if !ok {
			return nil, Appointment{}, ErrInvalidStatus
		}
		items[i].Status = status
		return items, items[i], nil
	}
	return nil, Appointment{}, ErrNotFound
}

// SweepBefore drops every record dated strictly before cutoff.
// Records whose date cannot be parsed are kept.
func SweepBefore(items []Appointment, cutoff time.Time) (kept []Appointment, removed int) {
	kept = make([]Appointment, 0, len(items))
	for _, a := range items {
		if d, ok := a.Day(); ok && d.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	return kept, removed
}
