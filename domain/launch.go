package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedDataset is returned when a launch record violates the dataset invariants.
	// It is a startup failure: the dashboard never renders from a dataset that failed to load.
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrUnknownField is returned when a field name is not one of the filterable record fields.
	ErrUnknownField = errors.New("unknown field")
)

// DateLayout is the ISO 8601 calendar date layout used for launch dates.
const DateLayout = "2006-01-02"

// LaunchRepository defines the interface for reading the launch dataset.
// The dataset is loaded once at startup, so the interface is read-only.
type LaunchRepository interface {
	// GetLaunches returns every launch record in insertion order.
	GetLaunches() ([]*LaunchRecord, error)
}

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	LaunchSite    string    // Identifier of the launch pad or site.
	Orbit         string    // Target orbit class.
	PayloadMassKg float64   // Payload mass in kilograms, never negative.
	OutcomeClass  int       // 1 for a successful landing, 0 for a failure.
	Date          time.Time // Calendar date of the launch.
}

// Successful reports whether the launch outcome class is a success.
func (r LaunchRecord) Successful() bool {
	return r.OutcomeClass == 1
}

// Validate checks the record invariants and returns an error wrapping ErrMalformedDataset on failure.
func (r LaunchRecord) Validate() error {
	if r.LaunchSite == "" {
		return fmt.Errorf("%w: empty launch site", ErrMalformedDataset)
	}
	if r.Orbit == "" {
		return fmt.Errorf("%w: empty orbit for %s", ErrMalformedDataset, r.LaunchSite)
	}
	if r.PayloadMassKg < 0 {
		return fmt.Errorf("%w: negative payload mass %v for %s", ErrMalformedDataset, r.PayloadMassKg, r.LaunchSite)
	}
	if r.OutcomeClass != 0 && r.OutcomeClass != 1 {
		return fmt.Errorf("%w: outcome class %d for %s", ErrMalformedDataset, r.OutcomeClass, r.LaunchSite)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: missing date for %s", ErrMalformedDataset, r.LaunchSite)
	}
	return nil
}

// Field names a filterable column of LaunchRecord.
type Field string

const (
	FieldLaunchSite Field = "launchSite"
	FieldOrbit      Field = "orbit"
)

// Value returns the value of field f for the record.
// It returns an error wrapping ErrUnknownField for any other field name.
func (f Field) Value(r LaunchRecord) (string, error) {
	switch f {
	case FieldLaunchSite:
		return r.LaunchSite, nil
	case FieldOrbit:
		return r.Orbit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
}

// ParseDate parses an ISO 8601 calendar date, wrapping failures in ErrMalformedDataset.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parsing date %q: %v", ErrMalformedDataset, value, err)
	}
	return date, nil
}
