package spacex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/uuid"
)

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// WriteLog records a log entry. The entry goes to the structured logger, to the
// repository when one is configured, and to OnLog when a handler is set.
func (dashboard *Dashboard) WriteLog(level string, message string, options ...func(log *domain.Log) error) error {
	slogLevel, ok := logLevels[level]
	if !ok {
		return fmt.Errorf("level should be either: DEBUG, INFO, WARN, ERROR, got %q", level)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating new uuid : %w", err)
	}
	log := domain.Log{
		ID:        id,
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	}
	for _, option := range options {
		if err := option(&log); err != nil {
			return fmt.Errorf("applying log option : %w", err)
		}
	}

	attrs := []slog.Attr{slog.String("log_id", log.ID.String())}
	if log.RenderID != nil {
		attrs = append(attrs, slog.String("render_id", log.RenderID.String()))
	}
	if log.ExtensionID != nil {
		attrs = append(attrs, slog.String("extension_id", log.ExtensionID.String()))
	}
	if len(log.Context) > 0 {
		attrs = append(attrs, slog.Any("context", log.Context))
	}
	dashboard.Logger.LogAttrs(context.Background(), slogLevel, message, attrs...)

	if dashboard.Repo != nil {
		if err := dashboard.Repo.InsertLog(&log); err != nil {
			return fmt.Errorf("inserting log : %w", err)
		}
	}

	if dashboard.OnLog != nil {
		if err := dashboard.OnLog(log); err != nil {
			return fmt.Errorf("log handler : %w", err)
		}
	}
	return nil
}
