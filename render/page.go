package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/a-h/templ"
	"github.com/yosssi/gohtml"
)

// DefaultHeading is the page heading used when PageData.Heading is empty.
const DefaultHeading = "🚀 SpaceX Launch Analytics Dashboard"

// PageData is everything the dashboard page shows for one render event.
type PageData struct {
	Heading   string
	Sites     []domain.Option
	Orbits    []domain.Option
	Selection domain.FilterSelection
	Summary   domain.LaunchSummary
	Chart     domain.ChartDescription
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"percent": func(rate float64) string { return fmt.Sprintf("%.1f%%", rate*100) },
	"kg":      func(kg float64) string { return fmt.Sprintf("%.0f kg", kg) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Heading}}</title>
</head>
<body>
<h1 style="text-align: center">{{.Heading}}</h1>
<form method="get" action="/">
<label for="site-dropdown">Launch site</label>
<select id="site-dropdown" name="site" onchange="this.form.submit()">
{{- range .Sites}}
<option value="{{.Value}}"{{if eq .Value $.Selection.Site}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<label for="orbit-dropdown">Orbit</label>
<select id="orbit-dropdown" name="orbit" onchange="this.form.submit()">
{{- range .Orbits}}
<option value="{{.Value}}"{{if eq .Value $.Selection.Orbit}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<noscript><button type="submit">Apply</button></noscript>
</form>
<section id="summary">
<dl>
<dt>Launches</dt><dd>{{.Summary.Launches}}</dd>
<dt>Successful</dt><dd>{{.Summary.Successes}}</dd>
<dt>Success rate</dt><dd>{{percent .Summary.SuccessRate}}</dd>
<dt>Mean payload</dt><dd>{{kg .Summary.MeanPayloadKg}}</dd>
</dl>
</section>
<figure id="chart">
{{.SVG}}
</figure>
</body>
</html>`))

// Page renders the dashboard page as formatted HTML.
func Page(data PageData) ([]byte, error) {
	if data.Heading == "" {
		data.Heading = DefaultHeading
	}

	svg, err := BarChartSVG(data.Chart)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		PageData
		SVG template.HTML
	}{
		PageData: data,
		SVG:      template.HTML(svg),
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}

	return gohtml.FormatBytes(buf.Bytes()), nil
}

// PageComponent wraps Page as a templ component so handlers can serve it with templ.Handler.
func PageComponent(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		page, err := Page(data)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	})
}
