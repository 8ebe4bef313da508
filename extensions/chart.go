package extensions

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Shopify/go-lua"
	"github.com/Shopify/goluago/util"
)

func registerChartLibrary(l *lua.State) {
	l.Global("dashboard")

	if l.IsNil(-1) {
		l.Pop(1)
		return
	}

	lua.NewLibrary(l, chartLibrary())
	l.SetField(-2, "chart")
	l.Pop(1)
}

// chartLibrary returns the chart helpers available as `dashboard.chart`.
// Every helper takes a chart table of the shape passed to processChart and
// returns a new table, leaving its argument untouched.
func chartLibrary() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		// total returns the sum of the counts.
		//
		// @param chart table The chart.
		// @return number The number of launches in the chart.
		{Name: "total", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)

			l.PushInteger(chart.Total())
			return 1
		}},
		// sort orders the bars.
		//
		// @param chart table The chart.
		// @param by string (optional) "count" for the largest bar first, or "label". Defaults to "count".
		// @return table The sorted chart.
		{Name: "sort", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)
			by := lua.OptString(l, 3, "count")

			switch by {
			case "count":
				pushChart(l, sortByCount(chart))
			case "label":
				pushChart(l, sortByLabel(chart))
			default:
				lua.ArgumentError(l, 3, "expected \"count\" or \"label\"")
				return 0
			}
			return 1
		}},
		// top keeps the n largest bars, largest first.
		//
		// @param chart table The chart.
		// @param n number The number of bars to keep.
		// @return table The truncated chart.
		{Name: "top", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)
			n := lua.CheckInteger(l, 3)
			if n < 0 {
				lua.ArgumentError(l, 3, "expected a non-negative number")
				return 0
			}

			sorted := sortByCount(chart)
			n = min(n, len(sorted.Categories))
			sorted.Categories = sorted.Categories[:n]
			sorted.Counts = sorted.Counts[:n]
			pushChart(l, sorted)
			return 1
		}},
		// relabel renames categories. Categories renamed to the same label are merged
		// into the position of the first one.
		//
		// @param chart table The chart.
		// @param labels table A map of old category to new category.
		// @return table The relabelled chart.
		{Name: "relabel", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)
			lua.CheckType(l, 3, lua.TypeTable)

			labels := map[string]string{}
			if value, err := util.PullTable(l, 3); err == nil {
				mapping, _ := value.(map[string]any)
				for from, to := range mapping {
					label, ok := to.(string)
					if !ok {
						lua.ArgumentError(l, 3, "expected a table of strings")
						return 0
					}
					labels[from] = label
				}
			}

			pushChart(l, relabel(chart, labels))
			return 1
		}},
		// shares returns each bar's fraction of the total, 0 for an empty chart.
		//
		// @param chart table The chart.
		// @return table An array of numbers aligned with the categories.
		{Name: "shares", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)

			total := chart.Total()
			shares := make([]any, len(chart.Counts))
			for i, count := range chart.Counts {
				share := 0.0
				if total > 0 {
					share = float64(count) / float64(total)
				}
				shares[i] = share
			}
			util.DeepPush(l, shares)
			return 1
		}},
		// encode returns the chart as JSON, in the form served by /api/chart.
		//
		// @param chart table The chart.
		// @param indent number (optional) The number of spaces to use for indentation.
		// @return string The JSON encoded chart.
		{Name: "encode", Function: func(l *lua.State) int {
			chart := checkChart(l, 2)
			indent := lua.OptInteger(l, 3, 0)

			var jsonBytes []byte
			var err error
			if indent > 0 {
				jsonBytes, err = json.MarshalIndent(chart, "", strings.Repeat(" ", indent))
			} else {
				jsonBytes, err = json.Marshal(chart)
			}
			if err != nil {
				lua.Errorf(l, "marshalling chart: %s", err.Error())
				return 0
			}

			l.PushString(string(jsonBytes))
			return 1
		}},
	}
}

// checkChart reads the chart table at index, raising a Lua argument error when it is malformed.
func checkChart(l *lua.State, index int) domain.ChartDescription {
	lua.CheckType(l, index, lua.TypeTable)

	value, err := util.PullTable(l, l.AbsIndex(index))
	if err != nil {
		lua.ArgumentError(l, index, err.Error())
		return domain.ChartDescription{}
	}
	chart, err := chartFromTable(value)
	if err != nil {
		lua.ArgumentError(l, index, err.Error())
		return domain.ChartDescription{}
	}
	return chart
}

func pushChart(l *lua.State, chart domain.ChartDescription) {
	util.DeepPush(l, chartToTable(chart))
}

type bar struct {
	category string
	count    int
}

func bars(chart domain.ChartDescription) []bar {
	result := make([]bar, len(chart.Categories))
	for i := range chart.Categories {
		result[i] = bar{category: chart.Categories[i], count: chart.Counts[i]}
	}
	return result
}

func fromBars(title string, bars []bar) domain.ChartDescription {
	chart := domain.ChartDescription{
		Title:      title,
		Categories: make([]string, len(bars)),
		Counts:     make([]int, len(bars)),
	}
	for i, b := range bars {
		chart.Categories[i] = b.category
		chart.Counts[i] = b.count
	}
	return chart
}

// sortByCount orders bars by descending count, ties by label.
func sortByCount(chart domain.ChartDescription) domain.ChartDescription {
	sorted := bars(chart)
	slices.SortStableFunc(sorted, func(a, b bar) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.category, b.category)
	})
	return fromBars(chart.Title, sorted)
}

func sortByLabel(chart domain.ChartDescription) domain.ChartDescription {
	sorted := bars(chart)
	slices.SortStableFunc(sorted, func(a, b bar) int {
		return cmp.Compare(a.category, b.category)
	})
	return fromBars(chart.Title, sorted)
}

func relabel(chart domain.ChartDescription, labels map[string]string) domain.ChartDescription {
	var merged []bar
	position := map[string]int{}
	for _, b := range bars(chart) {
		if label, ok := labels[b.category]; ok {
			b.category = label
		}
		if i, seen := position[b.category]; seen {
			merged[i].count += b.count
			continue
		}
		position[b.category] = len(merged)
		merged = append(merged, b)
	}
	return fromBars(chart.Title, merged)
}
