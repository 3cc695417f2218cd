package posts

import "time"

// FormatTimestamp returns midnight UTC of the given date plus seconds, as
// RFC 3339 with an explicit +00:00 offset. The date must exist on the
// calendar, the year must fit in four digits and seconds must be below 60.
func FormatTimestamp(year int, month, day, seconds uint32) (string, error) {
	invalid := &InvalidDateError{Year: year, Month: month, Day: day, Seconds: seconds}
	if year < 0 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 || seconds > 59 {
		return "", invalid
	}
	t := time.Date(year, time.Month(month), int(day), 0, 0, int(seconds), 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round trip catches it.
	if t.Year() != year || uint32(t.Month()) != month || uint32(t.Day()) != day {
		return "", invalid
	}
	return t.Format("2006-01-02T15:04:05") + "+00:00", nil
}
