// File: services/availability/timefmt.go
package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// To24Hour converts a display label like "9:00 AM" or "12:30 PM" into
// the stored form "09:00" / "12:30". Noon maps to hour 12 and midnight
// to hour 0. Malformed labels fail with InvalidTimeLabelError rather
// than being silently coerced.
func To24Hour(label string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return "", &InvalidTimeLabelError{Label: label}
	}
	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", &InvalidTimeLabelError{Label: label}
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", &InvalidTimeLabelError{Label: label}
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", &InvalidTimeLabelError{Label: label}
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", &InvalidTimeLabelError{Label: label}
	}

	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// To12Hour converts a stored label like "09:00" or "16:30" into the
// display form "9:00 AM" / "4:30 PM". Hour 0 renders as 12 AM and hour
// 12 as 12 PM.
func To12Hour(label string) (string, error) {
	hm := strings.Split(strings.TrimSpace(label), ":")
	if len(hm) != 2 {
		return "", &InvalidTimeLabelError{Label: label}
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", &InvalidTimeLabelError{Label: label}
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", &InvalidTimeLabelError{Label: label}
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem), nil
}
