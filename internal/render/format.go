package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// KFormat renders a count with a "k" suffix above a thousand,
// trimming a trailing ".0" (1500 -> "1.5k", 2000 -> "2k", 999 -> "999").
func KFormat(n int) string {
	abs := n
	sign := ""
	if n < 0 {
		abs = -n
		sign = "-"
	}
	if abs < 1000 {
		return strconv.Itoa(n)
	}
	v := math.Round(float64(abs)/1000*10) / 10
	if v == math.Trunc(v) {
		return fmt.Sprintf("%s%dk", sign, int(v))
	}
	return fmt.Sprintf("%s%.1fk", sign, v)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeXML makes arbitrary text safe for SVG embedding.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
