package gofpdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runeWidth stands in for font metrics: one unit per rune.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapWordsGreedy(t *testing.T) {
	lines := wrapWords("uno dos tres cuatro", 8, runeWidth)
	assert.Equal(t, []string{"uno dos", "tres", "cuatro"}, lines)
}

func TestWrapWordsNeverExceedsWidth(t *testing.T) {
	text := "condiciones especiales de entrega en la planta de Monterrey previo pago"
	for _, line := range wrapWords(text, 15, runeWidth) {
		assert.LessOrEqual(t, runeWidth(line), 15.0, "line %q", line)
	}
}

func TestWrapWordsOverwideWordIsFlushed(t *testing.T) {
	lines := wrapWords("ab supercalifragilistico cd", 5, runeWidth)
	assert.Equal(t, []string{"ab", "supercalifragilistico", "cd"}, lines)

	// A single over-wide word still produces a line.
	lines = wrapWords("supercalifragilistico", 5, runeWidth)
	assert.Equal(t, []string{"supercalifragilistico"}, lines)
}

func TestWrapWordsFlushesFinalPartialLine(t *testing.T) {
	lines := wrapWords("uno dos", 100, runeWidth)
	assert.Equal(t, []string{"uno dos"}, lines)
}

func TestWrapWordsEmpty(t *testing.T) {
	assert.Empty(t, wrapWords("", 10, runeWidth))
	assert.Empty(t, wrapWords("   ", 10, runeWidth))
}

func TestWrapWordsCollapsesWhitespace(t *testing.T) {
	lines := wrapWords("uno\n\tdos   tres", 100, runeWidth)
	assert.Equal(t, []string{"uno dos tres"}, lines)
	assert.False(t, strings.Contains(lines[0], "  "))
}
