package render

import (
	"fmt"
	"strconv"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/beevik/etree"
)

// Chart geometry in SVG user units.
const (
	chartWidth   = 720
	chartHeight  = 420
	marginTop    = 60
	marginRight  = 24
	marginBottom = 72
	marginLeft   = 56
	barGap       = 0.25
	barColor     = "#1f77b4"
)

// EmptyChartText is shown in place of bars when no launch matches the selection.
const EmptyChartText = "No launches match the selected filters"

// BarChartSVG draws chart as an indented SVG document with one bar per category.
func BarChartSVG(chart domain.ChartDescription) ([]byte, error) {
	if len(chart.Categories) != len(chart.Counts) {
		return nil, fmt.Errorf("drawing chart: %d categories and %d counts", len(chart.Categories), len(chart.Counts))
	}

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(chartWidth))
	svg.CreateAttr("height", strconv.Itoa(chartHeight))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", chartWidth, chartHeight))
	svg.CreateAttr("role", "img")
	svg.CreateAttr("font-family", "sans-serif")

	svg.CreateElement("title").SetText(chart.Title)

	heading := svg.CreateElement("text")
	heading.CreateAttr("class", "chart-title")
	heading.CreateAttr("x", strconv.Itoa(chartWidth/2))
	heading.CreateAttr("y", strconv.Itoa(marginTop/2))
	heading.CreateAttr("text-anchor", "middle")
	heading.CreateAttr("font-size", "18")
	heading.SetText(chart.Title)

	plotWidth := float64(chartWidth - marginLeft - marginRight)
	plotHeight := float64(chartHeight - marginTop - marginBottom)
	baseline := float64(marginTop) + plotHeight

	axis := svg.CreateElement("line")
	axis.CreateAttr("class", "axis")
	axis.CreateAttr("x1", strconv.Itoa(marginLeft))
	axis.CreateAttr("y1", formatFloat(baseline))
	axis.CreateAttr("x2", strconv.Itoa(chartWidth-marginRight))
	axis.CreateAttr("y2", formatFloat(baseline))
	axis.CreateAttr("stroke", "#333")

	if chart.Empty() {
		empty := svg.CreateElement("text")
		empty.CreateAttr("class", "empty")
		empty.CreateAttr("x", strconv.Itoa(chartWidth/2))
		empty.CreateAttr("y", formatFloat(float64(marginTop)+plotHeight/2))
		empty.CreateAttr("text-anchor", "middle")
		empty.SetText(EmptyChartText)
		return writeDocument(doc)
	}

	maxCount := 0
	for _, count := range chart.Counts {
		maxCount = max(maxCount, count)
	}

	slot := plotWidth / float64(len(chart.Categories))
	barWidth := slot * (1 - barGap)

	for i, category := range chart.Categories {
		count := chart.Counts[i]
		height := 0.0
		if maxCount > 0 {
			height = plotHeight * float64(count) / float64(maxCount)
		}
		x := float64(marginLeft) + slot*float64(i) + (slot-barWidth)/2
		center := x + barWidth/2

		group := svg.CreateElement("g")
		group.CreateAttr("class", "bar")
		group.CreateAttr("data-category", category)

		rect := group.CreateElement("rect")
		rect.CreateAttr("x", formatFloat(x))
		rect.CreateAttr("y", formatFloat(baseline-height))
		rect.CreateAttr("width", formatFloat(barWidth))
		rect.CreateAttr("height", formatFloat(height))
		rect.CreateAttr("fill", barColor)

		value := group.CreateElement("text")
		value.CreateAttr("class", "count")
		value.CreateAttr("x", formatFloat(center))
		value.CreateAttr("y", formatFloat(baseline-height-6))
		value.CreateAttr("text-anchor", "middle")
		value.SetText(strconv.Itoa(count))

		label := group.CreateElement("text")
		label.CreateAttr("class", "label")
		label.CreateAttr("x", formatFloat(center))
		label.CreateAttr("y", formatFloat(baseline+20))
		label.CreateAttr("text-anchor", "middle")
		label.SetText(category)
	}

	return writeDocument(doc)
}

func writeDocument(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing svg: %w", err)
	}
	return out, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
