package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```JSON {\"a\":1}```":    `{"a":1}`,
		"```\n[1,2]\n```":         `[1,2]`,
		"  {\"a\":1}  ":           `{"a":1}`,
		"plain text":              "plain text",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFences(in), in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "9,000", FormatNumber(9000))
	assert.Equal(t, "15,000", FormatNumber(15000))
	assert.Equal(t, "500", FormatNumber(500))
	assert.Equal(t, "-1,500", FormatNumber(-1500))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
}
