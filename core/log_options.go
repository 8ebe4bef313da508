// Package core provides small utilities shared by the dashboard packages.
// This file contains option functions for customizing log entries.
package core

import (
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/uuid"
)

// LogWithContext is an option to add a context map to a log entry.
func LogWithContext(context map[string]any) func(log *domain.Log) error {
	return func(log *domain.Log) error {
		log.Context = context
		return nil
	}
}

// LogWithRenderID is an option to associate a log entry with a render event ID.
func LogWithRenderID(id uuid.UUID) func(log *domain.Log) error {
	return func(log *domain.Log) error {
		log.RenderID = &id
		return nil
	}
}

// LogWithExtensionID is an option to associate a log entry with an extension ID.
func LogWithExtensionID(id uuid.UUID) func(log *domain.Log) error {
	return func(log *domain.Log) error {
		log.ExtensionID = &id
		return nil
	}
}
