package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$750,000", FormatPrice(750000))
	assert.Equal(t, "$1,350,000", FormatPrice(1350000))
	assert.Equal(t, "$150,000", FormatPrice(150000))
	assert.Equal(t, "$0", FormatPrice(0))
}

func TestFormatPriceFraction(t *testing.T) {
	// A fractional discount can produce fractional pesos; at most two
	// digits show, and whole amounts show none.
	assert.Equal(t, "$1,234.5", FormatPrice(1234.5))
	assert.Equal(t, "$1,000,000", FormatPrice(1000000.0))
}
