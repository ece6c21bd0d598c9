package handlers

import "time"

// parseDate reads the dashboard's date format. Empty or malformed values
// collapse to nil; optional dates never fail a request.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
