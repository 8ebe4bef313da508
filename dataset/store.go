// Package dataset holds the immutable launch table the dashboard renders from.
//
// A Store is loaded once at startup, either from a domain.LaunchRepository or
// from the built-in sample literal, and never changes afterwards. Every method
// is read-only, so a Store can be shared by concurrent readers without locking.
package dataset

import (
	"fmt"
	"time"

	"github.com/Ananya178/spacex-launch-prediction/domain"
)

// Source is anything that can supply the launch rows at startup.
type Source interface {
	GetLaunches() ([]*domain.LaunchRecord, error)
}

// Store is an immutable, in-memory table of launch records.
type Store struct {
	records []domain.LaunchRecord
}

// Load reads every record from source and validates it.
// A record that violates the dataset invariants returns an error wrapping domain.ErrMalformedDataset.
func Load(source Source) (*Store, error) {
	launches, err := source.GetLaunches()
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	records := make([]domain.LaunchRecord, 0, len(launches))
	for i, launch := range launches {
		if launch == nil {
			return nil, fmt.Errorf("loading dataset: record %d: %w: nil record", i, domain.ErrMalformedDataset)
		}
		records = append(records, *launch)
	}

	return FromRecords(records)
}

// FromRecords validates and copies records into a new Store.
func FromRecords(records []domain.LaunchRecord) (*Store, error) {
	copied := make([]domain.LaunchRecord, len(records))
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("loading dataset: record %d: %w", i, err)
		}
		copied[i] = record
	}
	return &Store{records: copied}, nil
}

// Sample returns a Store holding the four-row sample launch dataset.
// It panics if the literal itself is malformed, which only a broken build can cause.
func Sample() *Store {
	store, err := FromRecords(sampleRecords())
	if err != nil {
		panic(err)
	}
	return store
}

func sampleRecords() []domain.LaunchRecord {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	return []domain.LaunchRecord{
		{LaunchSite: "CCAFS SLC 40", Orbit: "LEO", PayloadMassKg: 4700, OutcomeClass: 1, Date: date(2013, time.September, 28)},
		{LaunchSite: "CCAFS SLC 40", Orbit: "GTO", PayloadMassKg: 8500, OutcomeClass: 1, Date: date(2016, time.February, 19)},
		{LaunchSite: "KSC LC 39A", Orbit: "GEO", PayloadMassKg: 6200, OutcomeClass: 1, Date: date(2019, time.December, 5)},
		{LaunchSite: "VAFB SLC 4E", Orbit: "Polar", PayloadMassKg: 3500, OutcomeClass: 0, Date: date(2017, time.February, 14)},
	}
}

// Records returns a copy of the rows in load order.
func (s *Store) Records() []domain.LaunchRecord {
	records := make([]domain.LaunchRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.records)
}

// DistinctValues returns the distinct values of field in first-seen order.
// Only domain.FieldLaunchSite and domain.FieldOrbit are supported; any other
// field returns an error wrapping domain.ErrUnknownField.
func (s *Store) DistinctValues(field domain.Field) ([]string, error) {
	if _, err := field.Value(domain.LaunchRecord{}); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, record := range s.records {
		value, _ := field.Value(record)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values, nil
}

// Options returns the dropdown entries for field: the All option followed by
// one entry per distinct value.
func (s *Store) Options(field domain.Field) ([]domain.Option, error) {
	values, err := s.DistinctValues(field)
	if err != nil {
		return nil, err
	}

	options := make([]domain.Option, 0, len(values)+1)
	options = append(options, domain.Option{Label: domain.AllLabel, Value: domain.AllOption})
	for _, value := range values {
		options = append(options, domain.Option{Label: value, Value: value})
	}
	return options, nil
}
