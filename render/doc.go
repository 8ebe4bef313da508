// Package render turns chart descriptions into SVG documents and the dashboard HTML page.
package render
