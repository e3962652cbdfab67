package types

import "github.com/cosmos/cosmos-sdk/types/address"

const (
	// ModuleName is the name of the nftauction module
	ModuleName = "nftauction"

	// StoreKey is the default store key for the nftauction module
	StoreKey = ModuleName

	// RouterKey is the message route for the nftauction module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the nftauction module
	QuerierRoute = ModuleName
)

const (
	prefixParams = iota + 1
	prefixAuctions
)

var (
	// KeyParams is the store key for the nftauction module's parameters.
	KeyParams = []byte{prefixParams}
	// KeyAuctions is the store prefix for auction records.
	KeyAuctions = []byte{prefixAuctions}
)

// AuctionKey returns the key of an auction record relative to KeyAuctions.
func AuctionKey(auction []byte) []byte {
	return address.MustLengthPrefix(auction)
}
