package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyMM(t *testing.T) {
	assert.Equal(t, "$6.5M", FormatCurrencyMM(6.5))
	assert.Equal(t, "$110.5M", FormatCurrencyMM(110.5))
	assert.Equal(t, "$0.0M", FormatCurrencyMM(0))
	assert.Equal(t, "-$3.0M", FormatCurrencyMM(-3))
	// One decimal place, rounded.
	assert.Equal(t, "$7.7M", FormatCurrencyMM(7.69))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "6.5%", FormatPercent(0.065))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(1))
}

func TestFormatPercentPoints(t *testing.T) {
	// Already ×100; no rescaling.
	assert.Equal(t, "13.0%", FormatPercentPoints(13.0))
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "7.7x", FormatRatio(7.6923))
	assert.Equal(t, "15.4x", FormatRatio(15.3846))
}
