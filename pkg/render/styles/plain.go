package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/wetland/pkg/render/plan"
)

// Plain draws unfilled outlines with the caption centered in each section.
type Plain struct{}

func (Plain) Name() string { return NamePlain }

func (Plain) RenderDefs(*bytes.Buffer) {}

func (Plain) RenderBlock(buf *bytes.Buffer, b plan.Block) {
	fmt.Fprintf(buf, `  <rect id="section-%d" class="section" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="black" stroke-width="1"/>`+"\n",
		b.Index, b.Left, b.Top, b.Width, b.Height)
}

func (Plain) RenderLabel(buf *bytes.Buffer, b plan.Block) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="%.0f">`,
		b.CenterX(), b.CenterY(), labelFontSize)
	escape(buf, b.Label())
	fmt.Fprintf(buf, `<tspan x="%.2f" dy="%.2f">`, b.CenterX(), labelFontSize*labelLineHeight)
	escape(buf, b.Caption())
	buf.WriteString("</tspan></text>\n")
}

func (Plain) BlockCSS(b plan.Block) string {
	return fmt.Sprintf("width: %.2fpx; height: %.2fpx; border: 1px solid black; margin: 5px; display: inline-block;", b.Width, b.Height)
}

func (Plain) LabelCSS() string { return "" }
