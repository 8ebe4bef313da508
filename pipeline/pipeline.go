// Package pipeline turns a filter selection into a chart description.
//
// Every function here is pure: the output depends only on the records and the
// selection passed in, and nothing is retained between calls.
package pipeline

import (
	"sort"

	"github.com/Ananya178/spacex-launch-prediction/dataset"
	"github.com/Ananya178/spacex-launch-prediction/domain"
)

// Filter returns the records matching sel. A value equal to domain.AllOption
// disables that filter. Values that match nothing yield an empty result.
func Filter(records []domain.LaunchRecord, sel domain.FilterSelection) []domain.LaunchRecord {
	filtered := make([]domain.LaunchRecord, 0, len(records))
	for _, record := range records {
		if sel.Site != domain.AllOption && record.LaunchSite != sel.Site {
			continue
		}
		if sel.Orbit != domain.AllOption && record.Orbit != sel.Orbit {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// Render filters records by sel and counts the remaining launches per site.
// Categories are sorted lexically; a selection matching no records produces
// a chart with empty, non-nil axes.
func Render(records []domain.LaunchRecord, sel domain.FilterSelection) domain.ChartDescription {
	counts := make(map[string]int)
	for _, record := range Filter(records, sel) {
		counts[record.LaunchSite]++
	}

	categories := make([]string, 0, len(counts))
	for site := range counts {
		categories = append(categories, site)
	}
	sort.Strings(categories)

	chart := domain.ChartDescription{
		Title:      domain.ChartTitle,
		Categories: categories,
		Counts:     make([]int, len(categories)),
	}
	for i, site := range categories {
		chart.Counts[i] = counts[site]
	}
	return chart
}

// Summarize aggregates the records matching sel.
func Summarize(records []domain.LaunchRecord, sel domain.FilterSelection) domain.LaunchSummary {
	var summary domain.LaunchSummary
	for _, record := range Filter(records, sel) {
		summary.Launches++
		summary.TotalPayloadKg += record.PayloadMassKg
		if record.Successful() {
			summary.Successes++
		}
	}

	if summary.Launches > 0 {
		summary.SuccessRate = float64(summary.Successes) / float64(summary.Launches)
		summary.MeanPayloadKg = summary.TotalPayloadKg / float64(summary.Launches)
	}
	return summary
}

// Pipeline binds the pure functions to a loaded Store.
type Pipeline struct {
	store *dataset.Store
}

// New returns a Pipeline reading from store.
func New(store *dataset.Store) *Pipeline {
	return &Pipeline{store: store}
}

// Render returns the chart description for sel.
func (p *Pipeline) Render(sel domain.FilterSelection) domain.ChartDescription {
	return Render(p.store.Records(), sel.Normalize())
}

// Summarize returns the launch summary for sel.
func (p *Pipeline) Summarize(sel domain.FilterSelection) domain.LaunchSummary {
	return Summarize(p.store.Records(), sel.Normalize())
}

// Store returns the Store the pipeline reads from.
func (p *Pipeline) Store() *dataset.Store {
	return p.store
}
