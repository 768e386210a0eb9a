// Package textwidth measures terminal column widths of mixed CJK/ASCII text.
package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the widest line of s in monospace columns. Chinese
// characters count as two columns, measured by their GBK encoding; ANSI
// escapes and box-drawing characters are excluded from that measure.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		maxWidth = max(maxWidth, lineWidth(line))
	}
	return maxWidth
}

// PadRight appends ASCII spaces until the rendered width matches target.
func PadRight(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

func lineWidth(s string) int {
	if s == "" {
		return 0
	}
	clean := stripANSI(s)

	// GBK encodes box-drawing runes as double width, terminals draw them
	// in a single column.
	boxes := 0
	clean = strings.Map(func(r rune) rune {
		if isBoxDrawing(r) {
			boxes++
			return -1
		}
		return r
	}, clean)

	encoder := simplifiedchinese.GBK.NewEncoder()
	encoded, _, err := transform.String(encoder, clean)
	if err != nil {
		return fallbackWidth(clean) + boxes
	}
	return len(encoded) + boxes
}

func isBoxDrawing(r rune) bool {
	return r >= 0x2500 && r <= 0x257F
}

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func fallbackWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		if r <= unicode.MaxASCII {
			width++
		} else {
			width += 2
		}
	}
	return width
}
