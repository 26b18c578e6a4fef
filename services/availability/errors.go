// File: services/availability/errors.go
package availability

import (
	"errors"
	"fmt"
)

// ErrNoContextSelected is returned when an operation runs without a
// clinic and doctor selected.
var ErrNoContextSelected = errors.New("no clinic or doctor selected")

// InvalidTimeLabelError reports a time label that does not match the
// expected 12-hour or 24-hour format.
type InvalidTimeLabelError struct {
	Label string
}

func (e *InvalidTimeLabelError) Error() string {
	return fmt.Sprintf("invalid time label %q", e.Label)
}

// UnknownSlotError reports a slot label outside the day's grid.
type UnknownSlotError struct {
	Date string
	Time string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("no slot %q on %s", e.Time, e.Date)
}
