package timefmt

import (
	"fmt"
	"time"
)

// Layout accepted by datetime-local input controls.
const InputLayout = "2006-01-02T15:04"

// Layout for calendar dates exchanged with the backend.
const DateLayout = "2006-01-02"

// DisplayPlaceholder is rendered wherever a timestamp is absent.
const DisplayPlaceholder = "-"

// DecimalToTime converts a non-negative decimal hour value to "HH:MM".
// Minutes are floored and never carried into the hour column, so 7.99
// renders as "07:59", not "08:00". Callers rely on this exact behavior.
func DecimalToTime(decimal float64) string {
	if decimal < 0 {
		decimal = 0
	}
	hours := int(decimal)
	minutes := int((decimal - float64(hours)) * 60)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatForDisplay renders a timestamp as "HH:MM" in the given display
// location. A nil timestamp renders as the placeholder.
//
// Convention: the backend always returns RFC 3339 timestamps with an
// explicit offset; every view converts through the one configured display
// location. No call site may add a fixed offset by hand.
func FormatForDisplay(t *time.Time, loc *time.Location) string {
	if t == nil {
		return DisplayPlaceholder
	}
	return t.In(loc).Format("15:04")
}

// FormatForInput renders a timestamp in the layout expected by a
// datetime-local input control. A nil timestamp renders as "".
func FormatForInput(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(InputLayout)
}

// FormatDate renders the calendar date of a timestamp in the display location.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseInput parses a datetime-local control value as wall time in the
// display location.
func ParseInput(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(InputLayout, value, loc)
}

// ParseDate parses a "YYYY-MM-DD" value as midnight in the display location.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

// SameDay reports whether two timestamps fall on the same calendar date
// in the display location.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ya, ma, da := a.In(loc).Date()
	yb, mb, db := b.In(loc).Date()
	return ya == yb && ma == mb && da == db
}
