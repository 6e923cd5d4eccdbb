package service

import (
	"regexp"
	"strconv"
	"strings"

	"eventhub/internal/errors"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// EventValidator validates event fields that carry domain rules beyond
// struct tags.
type EventValidator struct{}

// NewEventValidator creates a new event validator.
func NewEventValidator() *EventValidator {
	return &EventValidator{}
}

// ValidateTime checks the "HH:MM" event time format: exactly two numeric
// parts, hours 0-23, minutes 0-59.
func (v *EventValidator) ValidateTime(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return errors.ErrInvalidEventTime
	}
	for _, part := range parts {
		if !digitsOnly.MatchString(part) {
			return errors.ErrInvalidEventTime
		}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours > 23 {
		return errors.ErrInvalidEventTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes > 59 {
		return errors.ErrInvalidEventTime
	}
	return nil
}
