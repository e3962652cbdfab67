package types

import banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

// Decimals returns the number of decimal places of a denom, taken as the
// exponent of its display unit. Without a display unit the largest exponent
// is used.
func Decimals(md banktypes.Metadata) uint32 {
	var decimals uint32
	for _, unit := range md.DenomUnits {
		if unit == nil {
			continue
		}
		if md.Display != "" && unit.Denom == md.Display {
			return unit.Exponent
		}
		if unit.Exponent > decimals {
			decimals = unit.Exponent
		}
	}

	return decimals
}
