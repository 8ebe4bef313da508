package domain

const (
	// AllOption is the sentinel filter value that disables a filter.
	AllOption = "all"
	// AllLabel is the dropdown label shown for AllOption.
	AllLabel = "All"
	// ChartTitle is the title of the launches-by-site bar chart.
	ChartTitle = "Number of Launches by Site"
)

// FilterSelection holds the current value of both dashboard dropdowns.
// Each value is either AllOption or a value present in the dataset.
type FilterSelection struct {
	Site  string `json:"site"`
	Orbit string `json:"orbit"`
}

// AllSelection returns a selection with both filters disabled.
func AllSelection() FilterSelection {
	return FilterSelection{Site: AllOption, Orbit: AllOption}
}

// Normalize returns a copy of the selection where empty values are replaced with AllOption.
func (s FilterSelection) Normalize() FilterSelection {
	if s.Site == "" {
		s.Site = AllOption
	}
	if s.Orbit == "" {
		s.Orbit = AllOption
	}
	return s
}

// ChartDescription is the declarative description of the bar chart.
// Categories and Counts are aligned: Counts[i] is the number of launches at Categories[i].
type ChartDescription struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Counts     []int    `json:"counts"`
}

// Empty reports whether the chart has no categories.
func (c ChartDescription) Empty() bool {
	return len(c.Categories) == 0
}

// Total returns the sum of the count axis.
func (c ChartDescription) Total() int {
	total := 0
	for _, count := range c.Counts {
		total += count
	}
	return total
}

// Option is a single dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LaunchSummary aggregates the launches that match a selection.
type LaunchSummary struct {
	Launches       int     `json:"launches"`
	Successes      int     `json:"successes"`
	SuccessRate    float64 `json:"success_rate"` // Fraction in [0, 1], 0 when there are no launches.
	TotalPayloadKg float64 `json:"total_payload_kg"`
	MeanPayloadKg  float64 `json:"mean_payload_kg"`
}
