package server

import (
	"html/template"

	"github.com/matzehuels/wetland/pkg/render/summary"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// Form field names, as the browser form submits them.
const (
	formPopulation = "population"
	formWastewater = "wastewater"
	formCi         = "Ci"
	formCe         = "Ce"
	formType       = "wetlandType"
)

type pageData struct {
	Values  wetland.RawInputs
	Regimes []wetland.Regime
	Error   string
	Summary *summary.Summary
	Plan    template.HTML
}

func (p pageData) Selected(r wetland.Regime) bool {
	if p.Values.Regime == "" {
		return r == wetland.Horizontal
	}
	parsed, err := wetland.ParseRegime(p.Values.Regime)
	return err == nil && parsed == r
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Constructed Wetland Design</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  label { display: block; margin: 0.4em 0; }
  .error { color: #b00020; }
  #plot { margin-top: 1em; }
</style>
</head>
<body>
<h1>Constructed Wetland Design</h1>
<form method="post" action="/">
  <label>Population <input type="number" id="population" name="population" value="{{.Values.Population}}"></label>
  <label>Wastewater per person (L/day) <input type="number" step="any" id="wastewater" name="wastewater" value="{{.Values.PerCapitaFlow}}"></label>
  <label>Influent BOD, Ci (mg/L) <input type="number" step="any" id="Ci" name="Ci" value="{{.Values.InfluentConc}}"></label>
  <label>Effluent BOD, Ce (mg/L) <input type="number" step="any" id="Ce" name="Ce" value="{{.Values.EffluentConc}}"></label>
  <label>Wetland type
    <select id="wetlandType" name="wetlandType">
    {{- range .Regimes}}
      <option value="{{.}}"{{if $.Selected .}} selected{{end}}>{{.Name}} ({{.}})</option>
    {{- end}}
    </select>
  </label>
  <button type="submit" id="calculateBtn">Calculate</button>
</form>
{{- if .Error}}
<p class="error" role="alert">{{.Error}}</p>
{{- end}}
{{- with .Summary}}
<div id="results">
  <h2>{{.Title}}</h2>
  {{- range .Design}}
  <p>{{.String}}</p>
  {{- end}}
  <p>{{.SectionHeading}}:</p>
  {{- range .Sections}}
  <p>{{.String}}</p>
  {{- end}}
</div>
{{- end}}
{{- if .Plan}}
<div id="plot">{{.Plan}}</div>
{{- end}}
</body>
</html>
`))
