package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	labelFontSize   = 12.0
	labelLineHeight = 1.2
	labelPadX       = 4.0
	labelPadY       = 2.0
	labelInset      = 5.0
	charWidthRatio  = 0.6
)

// escape writes s to buf with XML special characters escaped.
func escape(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}

// textWidth estimates the rendered width of s at the label font size.
func textWidth(s string) float64 {
	return float64(len([]rune(s))) * labelFontSize * charWidthRatio
}
