// Package domain defines the core data structures of the launch dashboard.
// It contains the launch records that make up the dataset, the filter selection
// and chart description that flow through a render, and the repository
// interfaces that define the contracts for data persistence.
//
// This package keeps the dashboard's business types independent of the
// database, the HTTP transport and the chart writers, which all depend on it.
package domain
