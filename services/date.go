package services

import (
	"fmt"
	"time"
)

// ParseISODate parses a calendar date written as YYYY-MM-DD, the format used
// for "last updated" stamps in the site content
func ParseISODate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return parsed, nil
}
