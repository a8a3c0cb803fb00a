package appointment

import "strings"

// Slot is the capacity contention key: calendar day prefix plus time string.
type Slot struct {
	Day  string
	Time string
}

func SlotOf(dateISO, timeOfDay string) Slot {
	day := strings.TrimSpace(dateISO)
	if len(day) > len(DateLayout) {
		day = day[:len(DateLayout)]
	}
	return Slot{Day: day, Time: strings.TrimSpace(timeOfDay)}
}

func (s Slot) String() string {
	return s.Day + " " + s.Time
}

// ActiveInSlot counts non-cancelled records in slot, ignoring excludeID.
func ActiveInSlot(items []Appointment, slot Slot, excludeID int64) int {
	n := 0
	for _, a := range items {
		if a.ID == excludeID || a.IsCancelled() {
			continue
		}
		if a.Slot() == slot {
			n++
		}
	}
	return n
}
