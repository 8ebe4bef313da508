package db

import (
	"fmt"

	"github.com/Ananya178/spacex-launch-prediction/domain"
)

var _ domain.LaunchRepository = (*Repository)(nil)

// dbLaunch represents a launch record as stored in the database.
type dbLaunch struct {
	ID            int64   `db:"id"`              // Row identifier, defines insertion order.
	LaunchSite    string  `db:"launch_site"`     // Launch pad or site.
	Orbit         string  `db:"orbit"`           // Target orbit class.
	PayloadMassKg float64 `db:"payload_mass_kg"` // Payload mass in kilograms.
	OutcomeClass  int     `db:"outcome_class"`   // 1 success, 0 failure.
	LaunchDate    string  `db:"launch_date"`     // ISO 8601 calendar date.
}

// toDomainLaunch converts a dbLaunch to a domain.LaunchRecord.
// A date that does not parse returns an error wrapping domain.ErrMalformedDataset.
func toDomainLaunch(dbLaunch *dbLaunch) (*domain.LaunchRecord, error) {
	date, err := domain.ParseDate(dbLaunch.LaunchDate)
	if err != nil {
		return nil, fmt.Errorf("launch row %d: %w", dbLaunch.ID, err)
	}

	return &domain.LaunchRecord{
		LaunchSite:    dbLaunch.LaunchSite,
		Orbit:         dbLaunch.Orbit,
		PayloadMassKg: dbLaunch.PayloadMassKg,
		OutcomeClass:  dbLaunch.OutcomeClass,
		Date:          date,
	}, nil
}

// GetLaunches retrieves all launch records in insertion order.
func (repo *Repository) GetLaunches() ([]*domain.LaunchRecord, error) {
	var dbLaunches []*dbLaunch
	query := `SELECT id, launch_site, orbit, payload_mass_kg, outcome_class, launch_date FROM launch ORDER BY id`

	err := repo.dbConn.Select(&dbLaunches, query)
	if err != nil {
		return nil, fmt.Errorf("getting launches: %w", err)
	}

	launches := make([]*domain.LaunchRecord, len(dbLaunches))
	for i, dbLaunch := range dbLaunches {
		launch, err := toDomainLaunch(dbLaunch)
		if err != nil {
			return nil, err
		}
		launches[i] = launch
	}
	return launches, nil
}
