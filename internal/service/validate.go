package service

import (
	"net/mail"
	"strings"
	"time"
)

// acceptable textual date layouts, tried in order
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(field, "must not be empty")
	}
	return nil
}

func validateMinLength(field, value string, min int) error {
	if len(value) < min {
		return newValidationError(field, "too short")
	}
	return nil
}

func validateEnum(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return newValidationError(field, "is not an accepted value")
}

func validateEmail(field, value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return newValidationError(field, "is not a valid email address")
	}
	return nil
}

// parseDate coerces a textual date into a time value, naming the field on failure
func parseDate(field, raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, newValidationError(field, "must be a date")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, newValidationError(field, "is not a parseable date")
}
