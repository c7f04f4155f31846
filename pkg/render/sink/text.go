package sink

import (
	"bytes"
	"encoding/xml"
)

func escapeText(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}
