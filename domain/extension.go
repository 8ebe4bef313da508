package domain

import "github.com/google/uuid"

// Extension represents a Lua script that can adjust charts after the pipeline has rendered them.
type Extension struct {
	ID         uuid.UUID // Unique identifier for the extension.
	Name       string    // Human-readable name, usually the script file name.
	LuaContent string    // The Lua source code of the extension.
}
