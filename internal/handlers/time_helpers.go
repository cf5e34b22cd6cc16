package handlers

import "time"

// --------------------------------------------------
// Canonical clinic clock
// --------------------------------------------------

// All dates and times are interpreted in the clinic's single configured
// location; there is no per-user timezone normalization.

func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseDateTime(loc *time.Location, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		loc,
	)
}
