// Package extensions provides the Lua-based extension system for the dashboard.
// It includes a sandboxed runtime for executing Lua scripts and the Go functions
// exposed to them, allowing an extension to inspect and adjust a chart after the
// pipeline has rendered it.
package extensions
