// Package db provides the database layer for the launch dashboard.
// It encapsulates all interactions with the underlying SQLite database,
// managing the launch dataset, dashboard logs and row statistics.
//
// This package is responsible for:
// - Establishing and managing database connections (`db.go`).
// - Defining database-specific data structures that map to SQL table schemas.
// - Implementing repository interfaces (e.g., `LaunchRepository`, `LogRepository`).
// - Converting between database rows and the structs of the `domain` package,
//   including the use of `sql.Null*` types for nullable fields.
// - Managing database migrations (`migrations/`), which also seed the sample dataset.
package db
