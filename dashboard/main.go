package dashboard

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
)

type series struct {
	Dates         []string `json:"dates"`
	Clones        []int    `json:"clones"`
	ClonesUniques []int    `json:"clones_uniques"`
	Views         []int    `json:"views"`
	ViewsUniques  []int    `json:"views_uniques"`
}

type view struct {
	*entity.DashboardData
	HeaderImageURL string
	SeriesJSON     template.JS
}

// Render writes the static HTML dashboard for the given traffic data
func Render(w io.Writer, data *entity.DashboardData) error {
	s := series{
		Dates:         []string{},
		Clones:        []int{},
		ClonesUniques: []int{},
		Views:         []int{},
		ViewsUniques:  []int{},
	}
	for _, row := range data.Rows {
		s.Dates = append(s.Dates, row.Date)
		s.Clones = append(s.Clones, row.Clones)
		s.ClonesUniques = append(s.ClonesUniques, row.ClonesUniques)
		s.Views = append(s.Views, row.Views)
		s.ViewsUniques = append(s.ViewsUniques, row.ViewsUniques)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal chart series")
	}

	return pageTemplate.Execute(w, &view{
		DashboardData:  data,
		HeaderImageURL: constants.HeaderImageURL,
		SeriesJSON:     template.JS(raw),
	})
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>Dashboard {{.Owner}}/{{.Repo}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
           color: #333; background: linear-gradient(135deg, #8A90C8 0%, #E8B7B7 100%); }
    .container { max-width: 1200px; margin: auto; padding: 30px;
                 background: #fff; border-radius: 12px;
                 box-shadow: 0 6px 20px rgba(0,0,0,0.1); }
    h1 { text-align: center; color: #4A4A4A; }
    .updated { text-align: center; color: #666; }
    .overview { text-align: center; color: #666; }
    .section { margin-bottom: 40px; }
    .toggle { cursor: pointer; padding: 10px; background: #E8EAF6;
              border-radius: 8px; text-align: center; font-weight: bold; }
    table { width: 100%; border-collapse: collapse; margin-top: 16px; }
    th, td { padding: 10px; border-bottom: 1px solid #ddd; }
    th { background: #F1F3F8; text-align: left; }
    img.header { display: block; margin: 0 auto 25px; max-width: 300px; }
  </style>
  <script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
  <script>function toggle(){var c=document.getElementById('daily');c.style.display=c.style.display==='block'?'none':'block';}</script>
</head>
<body>
  <div class="container">
    <img class="header" src="{{.HeaderImageURL}}" alt="Logo">
    <h1>Dashboard {{.Owner}}/{{.Repo}}</h1>
    <p class="updated">Page updated: <strong>{{.UpdatedAt}}</strong></p>
{{- with .Overview}}
    <p class="overview">{{.Description}} &middot; ⭐ {{.Stars}} &middot; 🍴 {{.Forks}}</p>
{{- end}}
    <div class="section"><div id="clones"></div></div>
    <div class="section"><div id="views"></div></div>
    <div class="section">
      <div class="toggle" onclick="toggle()">Daily data</div>
      <div id="daily" style="display:none;">
        <table>
          <tr><th>date</th><th>clones</th><th>clones_uniques</th><th>views</th><th>views_uniques</th></tr>
{{- range .Rows}}
          <tr><td>{{.Date}}</td><td>{{.Clones}}</td><td>{{.ClonesUniques}}</td><td>{{.Views}}</td><td>{{.ViewsUniques}}</td></tr>
{{- end}}
        </table>
      </div>
    </div>
    <div class="section">
      <h2>Popular referrers</h2>
      <table>
        <tr><th>referrer</th><th>count</th><th>uniques</th></tr>
{{- range .Referrers}}
        <tr><td>{{.Referrer}}</td><td>{{.Count}}</td><td>{{.Uniques}}</td></tr>
{{- end}}
      </table>
    </div>
  </div>
  <script>
    var series = {{.SeriesJSON}};
    function dual(div, title, name1, y1, name2, y2) {
      Plotly.newPlot(div, [
        { x: series.dates, y: y1, name: name1, mode: 'lines+markers',
          connectgaps: true, line: { shape: 'linear', color: '#8A90C8' } },
        { x: series.dates, y: y2, name: name2, mode: 'lines+markers', yaxis: 'y2',
          connectgaps: true, line: { shape: 'linear', color: '#E8B7B7' } }
      ], {
        title: title,
        margin: { t: 40 },
        template: 'simple_white',
        yaxis2: { overlaying: 'y', side: 'right' }
      });
    }
    dual('clones', 'Clones vs unique cloners', 'clones', series.clones, 'uniques', series.clones_uniques);
    dual('views', 'Views vs unique visitors', 'views', series.views, 'uniques', series.views_uniques);
  </script>
</body>
</html>
`))
