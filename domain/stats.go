package domain

// StatsRepository defines the interface for retrieving counts about the stored data.
type StatsRepository interface {
	// CountLaunches returns the number of stored launch records.
	CountLaunches() (int, error)
	// CountSuccessful returns the number of launch records with a successful outcome.
	CountSuccessful() (int, error)
	// CountLogs returns the number of stored log entries.
	CountLogs() (int, error)
}
