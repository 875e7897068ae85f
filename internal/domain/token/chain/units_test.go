package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitsWholeAmount(t *testing.T) {
	got, err := ParseUnits("500")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("500000000000000000000", 10)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestParseUnitsFractionalAmount(t *testing.T) {
	got, err := ParseUnits("1.5")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestParseUnitsBareFraction(t *testing.T) {
	got, err := ParseUnits(".25")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("250000000000000000", 10)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestParseUnitsRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", " ", "abc", "-5", "1.2.3", ".", "1.0000000000000000001"} {
		_, err := ParseUnits(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestFormatUnits(t *testing.T) {
	n, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5", FormatUnits(n))

	n, _ = new(big.Int).SetString("500000000000000000000", 10)
	assert.Equal(t, "500", FormatUnits(n))

	assert.Equal(t, "0", FormatUnits(big.NewInt(0)))
	assert.Equal(t, "0", FormatUnits(nil))

	// One base unit survives formatting without losing precision.
	assert.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1)))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"1", "0.5", "123.456", "999999"} {
		n, err := ParseUnits(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, FormatUnits(n))
	}
}
