package sink

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/wetland/pkg/render/plan"
)

var planTemplate = template.Must(template.New("plan").Parse(
	`<div class="plan">
{{- range .Blocks}}
  <div class="section" style="{{.BlockCSS}}">
    <div class="section-label" style="{{.LabelCSS}}">{{.Label}}<br>{{.Caption}}</div>
  </div>
{{- end}}
</div>
`))

type htmlBlock struct {
	BlockCSS template.CSS
	LabelCSS template.CSS
	Label    string
	Caption  string
}

// RenderHTML renders the plan as a fragment of inline-styled <div> blocks,
// one per section, for embedding in a web page.
func RenderHTML(l plan.Layout, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)

	data := struct{ Blocks []htmlBlock }{Blocks: make([]htmlBlock, 0, len(l.Blocks))}
	for _, b := range l.Blocks {
		hb := htmlBlock{BlockCSS: template.CSS(r.style.BlockCSS(b))}
		if r.labels {
			hb.LabelCSS = template.CSS(r.style.LabelCSS())
			hb.Label = b.Label()
			hb.Caption = b.Caption()
		}
		data.Blocks = append(data.Blocks, hb)
	}

	var buf bytes.Buffer
	if err := planTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
