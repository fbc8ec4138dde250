package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKFormat(t *testing.T) {
	testCases := []struct {
		in       int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{1500, "1.5k"},
		{6626, "6.6k"},
		{14000, "14k"},
		{99950, "100k"},
		{-1500, "-1.5k"},
		{-42, "-42"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, KFormat(tc.in))
		})
	}
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;", escapeXML(`a & b <c> "d" 'e'`))
	assert.Equal(t, "plain", escapeXML("plain"))
}
