package chain

import (
	"errors"
	"math/big"
	"strings"
)

// Decimals is the ERC-20 decimal count of the STARS token.
const Decimals = 18

var (
	ErrInvalidAmount  = errors.New("invalid token amount")
	ErrInvalidAddress = errors.New("invalid address")

	unitScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
)

// ParseUnits converts a human-readable decimal string into base units.
// "500" becomes 500 * 10^18; "1.5" becomes 1500000000000000000.
func ParseUnits(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, ErrInvalidAmount
	}

	whole := amount
	frac := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole, frac = amount[:i], amount[i+1:]
	}
	if len(frac) > Decimals {
		return nil, ErrInvalidAmount
	}
	if whole == "" && frac == "" {
		return nil, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}

	wholePart, ok := new(big.Int).SetString(whole, 10)
	if !ok || wholePart.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	result := new(big.Int).Mul(wholePart, unitScale)

	if frac != "" {
		fracPart, ok := new(big.Int).SetString(frac, 10)
		if !ok || fracPart.Sign() < 0 {
			return nil, ErrInvalidAmount
		}
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(Decimals-len(frac))), nil)
		result.Add(result, fracPart.Mul(fracPart, scale))
	}
	return result, nil
}

// FormatUnits converts base units into a human-readable decimal string,
// trimming trailing zeros from the fractional part.
func FormatUnits(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(amount, unitScale, frac)

	if frac.Sign() == 0 {
		return whole.String()
	}

	fracStr := frac.Abs(frac).String()
	for len(fracStr) < Decimals {
		fracStr = "0" + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	return whole.String() + "." + fracStr
}
