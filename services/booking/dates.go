package booking

import "time"

// bookingDateLayouts are tried in order when deriving an instant from the
// free-text preferred date/time field.
var bookingDateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseBookingDate attempts to derive an instant from the free-text preferred
// date/time. The second return reports whether parsing succeeded.
func ParseBookingDate(preferred string) (time.Time, bool) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, preferred, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeBookingDate is the lenient two-path derivation: the parsed instant
// when the field is parseable, otherwise "now". A cosmetic date-format issue
// must never hard-fail booking creation.
func NormalizeBookingDate(preferred string) time.Time {
	if t, ok := ParseBookingDate(preferred); ok {
		return t
	}
	return time.Now()
}
