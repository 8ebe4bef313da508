package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/uuid"
)

var _ domain.LogRepository = (*Repository)(nil)

// dbLog is a row of the logs table. Dashboard logs come from WriteLog: render
// failures of the chart hook, lines printed by an extension and dashboard:log calls.
type dbLog struct {
	ID          uuid.UUID      `db:"id"`
	Timestamp   time.Time      `db:"timestamp"`
	Level       string         `db:"level"`        // DEBUG, INFO, WARN or ERROR
	Message     string         `db:"message"`
	Context     Metadata       `db:"context"`      // JSON object, '{}' when empty
	RenderID    sql.NullString `db:"render_id"`    // Set when the entry was written during a render event
	ExtensionID sql.NullString `db:"extension_id"` // Set when the Lua extension produced the entry
}

// toDomainLog converts a row back to a domain.Log. A render or extension ID
// that no longer parses is dropped rather than failing the whole log listing.
func toDomainLog(dbLog *dbLog) *domain.Log {
	log := &domain.Log{
		ID:        dbLog.ID,
		Timestamp: dbLog.Timestamp,
		Level:     dbLog.Level,
		Message:   dbLog.Message,
		Context:   map[string]any(dbLog.Context),
	}

	if dbLog.RenderID.Valid {
		if id, err := uuid.Parse(dbLog.RenderID.String); err == nil {
			log.RenderID = &id
		}
	}

	if dbLog.ExtensionID.Valid {
		if id, err := uuid.Parse(dbLog.ExtensionID.String); err == nil {
			log.ExtensionID = &id
		}
	}

	return log
}

func fromDomainLog(log *domain.Log) *dbLog {
	dbLog := &dbLog{
		ID:        log.ID,
		Timestamp: log.Timestamp,
		Level:     log.Level,
		Message:   log.Message,
		Context:   Metadata(log.Context),
	}

	if log.RenderID != nil {
		dbLog.RenderID = sql.NullString{String: log.RenderID.String(), Valid: true}
	}

	if log.ExtensionID != nil {
		dbLog.ExtensionID = sql.NullString{String: log.ExtensionID.String(), Valid: true}
	}

	return dbLog
}

// InsertLog stores one dashboard log entry.
func (repo *Repository) InsertLog(log *domain.Log) error {
	dbLog := fromDomainLog(log)
	query := `INSERT INTO logs (id, level, timestamp, message, context, render_id, extension_id)
	          VALUES (:id, :level, :timestamp, :message, :context, :render_id, :extension_id)`

	_, err := repo.dbConn.NamedExec(query, dbLog)
	if err != nil {
		return fmt.Errorf("inserting log %s: %w", log.ID, err)
	}

	return nil
}

// GetLogs returns every dashboard log entry, oldest first. Entries written in
// the same instant keep their V7 ID order.
func (repo *Repository) GetLogs() ([]*domain.Log, error) {
	var dbLogs []*dbLog
	query := `SELECT id, timestamp, level, message, context, render_id, extension_id FROM logs ORDER BY timestamp, id`

	err := repo.dbConn.Select(&dbLogs, query)
	if err != nil {
		return nil, fmt.Errorf("fetching all logs: %w", err)
	}

	domainLogs := make([]*domain.Log, len(dbLogs))
	for i, dbLog := range dbLogs {
		domainLogs[i] = toDomainLog(dbLog)
	}

	return domainLogs, nil
}
