package utils

import (
	"math"
	"strconv"
	"strings"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with a 1024 base, at most two decimals
// and trailing zeros trimmed: 0 -> "0 Bytes", 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(fileSizeUnits)-1 {
		value /= 1024
		unit++
	}
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + fileSizeUnits[unit]
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five HTML metacharacters with entities and leaves
// everything else untouched.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
