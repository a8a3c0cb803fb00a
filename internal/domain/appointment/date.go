package appointment

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate reads the calendar day out of an ISO-8601 date or date-time,
// discarding time of day and zone suffix. The result is midnight UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(DateLayout) {
		return time.Time{}, false
	}
	if len(raw) > len(DateLayout) {
		if sep := raw[len(DateLayout)]; sep != 'T' && sep != 't' && sep != ' ' {
			return time.Time{}, false
		}
	}
	d, err := time.Parse(DateLayout, raw[:len(DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FormatDate is the inverse of ParseDate for day values.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
