package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/wetland/pkg/render/plan"
)

const (
	bedFill   = "lightgreen"
	bedStroke = "green"
)

// Labeled draws filled beds with a caption box pinned to the top-left corner.
type Labeled struct{}

func (Labeled) Name() string { return NameLabeled }

func (Labeled) RenderDefs(*bytes.Buffer) {}

func (Labeled) RenderBlock(buf *bytes.Buffer, b plan.Block) {
	fmt.Fprintf(buf, `  <rect id="section-%d" class="section" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		b.Index, b.Left, b.Top, b.Width, b.Height, bedFill, bedStroke)
}

func (Labeled) RenderLabel(buf *bytes.Buffer, b plan.Block) {
	title, caption := b.Label(), b.Caption()
	w := max(textWidth(title), textWidth(caption)) + 2*labelPadX
	h := 2*labelFontSize*labelLineHeight + 2*labelPadY
	x, y := b.Left+labelInset, b.Top+labelInset

	fmt.Fprintf(buf, `  <rect class="section-label" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white" fill-opacity="0.8"/>`+"\n",
		x, y, w, h)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.0f">`, x+labelPadX, y+labelPadY+labelFontSize, labelFontSize)
	escape(buf, title)
	fmt.Fprintf(buf, `<tspan x="%.2f" dy="%.2f">`, x+labelPadX, labelFontSize*labelLineHeight)
	escape(buf, caption)
	buf.WriteString("</tspan></text>\n")
}

func (Labeled) BlockCSS(b plan.Block) string {
	return fmt.Sprintf("width: %.2fpx; height: %.2fpx; position: relative; background-color: %s; border: 1px solid %s; margin: 5px; display: inline-block;",
		b.Width, b.Height, bedFill, bedStroke)
}

func (Labeled) LabelCSS() string {
	return "position: absolute; top: 5px; left: 5px; background-color: rgba(255,255,255,0.8); padding: 2px 4px; font-size: 12px; line-height: 1.2;"
}
