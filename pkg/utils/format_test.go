package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 Bytes"},
		{"negative", -5, "0 Bytes"},
		{"bytes", 512, "512 Bytes"},
		{"one kilobyte", 1024, "1 KB"},
		{"kilobyte and a half", 1536, "1.5 KB"},
		{"two decimals", 1234567, "1.18 MB"},
		{"gigabytes", 5 * 1024 * 1024 * 1024, "5 GB"},
		{"terabytes", 3 * 1024 * 1024 * 1024 * 1024, "3 TB"},
		{"caps at terabytes", 2048 * 1024 * 1024 * 1024 * 1024, "2048 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#039;", EscapeHTML(`&<>"'`))
	assert.Equal(t, "&lt;b&gt;Tom &amp; Jerry&#039;s&lt;/b&gt;", EscapeHTML("<b>Tom & Jerry's</b>"))
}

func TestEscapeHTML_LeavesOtherCharactersAlone(t *testing.T) {
	input := "plain text / with = symbols; ümlauts and `backticks` 100%"
	assert.Equal(t, input, EscapeHTML(input))
	assert.Equal(t, "", EscapeHTML(""))
}

func TestEscapeHTML_DoesNotDoubleEscapeInOnePass(t *testing.T) {
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
}
