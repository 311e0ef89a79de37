package gofpdf

import "strings"

// wrapWords breaks text into lines no wider than maxWidth, accumulating
// words greedily: a word that would push the current line past the limit
// starts the next one, and the final partial line is always flushed. A
// single word wider than maxWidth still gets its own line so nothing is
// dropped.
func wrapWords(text string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if width(candidate) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
