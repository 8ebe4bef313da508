package extensions

import (
	"errors"
	"fmt"
	"math"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Shopify/go-lua"
	"github.com/Shopify/goluago/util"
)

// GoValue converts the Lua value at index into its Go equivalent.
// Tables are converted with util.PullTable; functions and userdata convert to nil.
func GoValue(l *lua.State, index int) any {
	switch l.TypeOf(index) {
	case lua.TypeNil, lua.TypeNone:
		return nil
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		return n
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeTable:
		// PullTable pushes while it walks the table, so the index must be absolute.
		value, err := util.PullTable(l, l.AbsIndex(index))
		if err != nil {
			return nil
		}
		return value
	default:
		return nil
	}
}

// chartToTable converts a chart into the shape pushed to processChart.
func chartToTable(chart domain.ChartDescription) map[string]any {
	categories := make([]any, len(chart.Categories))
	for i, category := range chart.Categories {
		categories[i] = category
	}
	counts := make([]any, len(chart.Counts))
	for i, count := range chart.Counts {
		counts[i] = count
	}

	return map[string]any{
		"title":      chart.Title,
		"categories": categories,
		"counts":     counts,
	}
}

// chartFromTable converts the table returned by processChart back into a chart.
// The title defaults to the standard chart title when the table omits it.
func chartFromTable(value any) (domain.ChartDescription, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return domain.ChartDescription{}, fmt.Errorf("%w: expected a table with named fields", ErrInvalidChart)
	}

	chart := domain.ChartDescription{
		Title:      domain.ChartTitle,
		Categories: []string{},
		Counts:     []int{},
	}

	if title, found := table["title"]; found {
		s, ok := title.(string)
		if !ok {
			return domain.ChartDescription{}, fmt.Errorf("%w: title must be a string", ErrInvalidChart)
		}
		chart.Title = s
	}

	categories, err := listValue(table["categories"])
	if err != nil {
		return domain.ChartDescription{}, fmt.Errorf("%w: categories %v", ErrInvalidChart, err)
	}
	for i, category := range categories {
		s, ok := category.(string)
		if !ok {
			return domain.ChartDescription{}, fmt.Errorf("%w: category %d is not a string", ErrInvalidChart, i+1)
		}
		chart.Categories = append(chart.Categories, s)
	}

	counts, err := listValue(table["counts"])
	if err != nil {
		return domain.ChartDescription{}, fmt.Errorf("%w: counts %v", ErrInvalidChart, err)
	}
	for i, count := range counts {
		n, ok := count.(float64)
		if !ok || n < 0 || n != math.Trunc(n) {
			return domain.ChartDescription{}, fmt.Errorf("%w: count %d is not a non-negative integer", ErrInvalidChart, i+1)
		}
		chart.Counts = append(chart.Counts, int(n))
	}

	if len(chart.Categories) != len(chart.Counts) {
		return domain.ChartDescription{}, fmt.Errorf("%w: %d categories and %d counts", ErrInvalidChart, len(chart.Categories), len(chart.Counts))
	}

	return chart, nil
}

// listValue accepts a pulled Lua array. An empty Lua table may come back as either an empty slice or an empty map.
func listValue(value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, errors.New("missing")
	case []any:
		return v, nil
	case map[string]any:
		if len(v) == 0 {
			return nil, nil
		}
		return nil, errors.New("must be an array")
	default:
		return nil, fmt.Errorf("must be an array, got %T", value)
	}
}
