package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func init() {
	goose.AddMigrationContext(upSeedLaunches, downSeedLaunches)
}

// seedLaunch is a frozen copy of a sample dataset row.
type seedLaunch struct {
	site    string
	orbit   string
	payload float64
	class   int
	date    string
}

var seedLaunches = []seedLaunch{
	{site: "CCAFS SLC 40", orbit: "LEO", payload: 4700, class: 1, date: "2013-09-28"},
	{site: "CCAFS SLC 40", orbit: "GTO", payload: 8500, class: 1, date: "2016-02-19"},
	{site: "KSC LC 39A", orbit: "GEO", payload: 6200, class: 1, date: "2019-12-05"},
	{site: "VAFB SLC 4E", orbit: "Polar", payload: 3500, class: 0, date: "2017-02-14"},
}

func upSeedLaunches(ctx context.Context, tx *sql.Tx) error {
	query := `INSERT INTO launch (launch_site, orbit, payload_mass_kg, outcome_class, launch_date) VALUES (?, ?, ?, ?, ?)`
	for _, launch := range seedLaunches {
		_, err := tx.ExecContext(ctx, query, launch.site, launch.orbit, launch.payload, launch.class, launch.date)
		if err != nil {
			return fmt.Errorf("seeding launch %s %s: %w", launch.site, launch.date, err)
		}
	}
	return nil
}

func downSeedLaunches(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM launch`); err != nil {
		return fmt.Errorf("removing seeded launches: %w", err)
	}
	return nil
}
