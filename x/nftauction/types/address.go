package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// AuctionAddress returns the address of the auction record that holds custody
// over the asset account. An account may hold several denoms, so the asset
// escrow is identified by the (account, denom) pair.
//
// The derived address is a hash with no corresponding private key: only this
// module can act on its behalf.
func AuctionAddress(assetAcc sdk.AccAddress, assetMint string) sdk.AccAddress {
	return address.Module(ModuleName, address.MustLengthPrefix(assetAcc), []byte(assetMint))
}

// DepositAddress returns the address of the bid escrow account owned by the
// auction at the given address.
func DepositAddress(auction sdk.AccAddress) sdk.AccAddress {
	return address.Module(ModuleName, auction)
}
