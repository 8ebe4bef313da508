package db

import (
	"fmt"

	"github.com/Ananya178/spacex-launch-prediction/domain"
)

var _ domain.StatsRepository = (*Repository)(nil)

// CountLaunches returns the number of stored launch records.
func (repo *Repository) CountLaunches() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM launch`

	err := repo.dbConn.Get(&count, query)
	if err != nil {
		return 0, fmt.Errorf("getting launch count: %w", err)
	}

	return count, nil
}

// CountSuccessful returns the number of launch records with a successful outcome.
func (repo *Repository) CountSuccessful() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM launch WHERE outcome_class = 1`

	err := repo.dbConn.Get(&count, query)
	if err != nil {
		return 0, fmt.Errorf("getting successful launch count: %w", err)
	}

	return count, nil
}

// CountLogs returns the number of stored log entries.
func (repo *Repository) CountLogs() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM logs`

	err := repo.dbConn.Get(&count, query)
	if err != nil {
		return 0, fmt.Errorf("getting log count: %w", err)
	}

	return count, nil
}
