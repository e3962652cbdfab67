package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.dedis.ch/protobuf"
)

// Auction is the persistent record of a single-item ascending auction. It is
// stored at AuctionAddress(AssetAcc, AssetMint) and is the sole authority
// over the bid escrow at DepositAcc.
type Auction struct {
	// MinPrice is the seller-set floor. It is only consulted when the
	// EnforceMinPrice parameter is enabled.
	MinPrice uint64
	// HighestBid is the amount currently escrowed for the leading bid, 0 if none.
	HighestBid uint64
	// BidderAcc is the funding account of the leading bidder; it receives the
	// refund when outbid. Empty when there is no bid yet.
	BidderAcc []byte
	// PaymentMint is the denom accepted as payment.
	PaymentMint string
	// AssetMint is the denom of the auctioned non-fungible asset.
	AssetMint string
	// AssetAcc is the account holding the auctioned asset.
	AssetAcc []byte
	// DepositAcc is the escrow account holding the leading bid's funds.
	DepositAcc []byte
	// Seller listed the asset.
	Seller []byte
}

// NewAuction returns an open auction with no bids.
func NewAuction(seller, assetAcc sdk.AccAddress, paymentMint, assetMint string, minPrice uint64) Auction {
	return Auction{
		MinPrice:    minPrice,
		PaymentMint: paymentMint,
		AssetMint:   assetMint,
		AssetAcc:    assetAcc,
		DepositAcc:  DepositAddress(AuctionAddress(assetAcc, assetMint)),
		Seller:      seller,
	}
}

// Address returns the derived address the auction is stored at.
func (a Auction) Address() sdk.AccAddress {
	return AuctionAddress(a.AssetAcc, a.AssetMint)
}

// HasBid reports whether a bidder currently leads the auction.
func (a Auction) HasBid() bool {
	return len(a.BidderAcc) > 0
}

// Bidder returns the leading bidder's account, or nil if there is none.
func (a Auction) Bidder() sdk.AccAddress {
	if !a.HasBid() {
		return nil
	}
	return sdk.AccAddress(a.BidderAcc)
}

// Validate checks the invariants a stored auction must satisfy.
func (a Auction) Validate() error {
	if len(a.Seller) == 0 {
		return fmt.Errorf("auction seller cannot be empty")
	}
	if len(a.AssetAcc) == 0 {
		return fmt.Errorf("auction asset account cannot be empty")
	}
	if err := sdk.ValidateDenom(a.AssetMint); err != nil {
		return fmt.Errorf("invalid asset mint: %w", err)
	}
	if err := sdk.ValidateDenom(a.PaymentMint); err != nil {
		return fmt.Errorf("invalid payment mint: %w", err)
	}
	if !sdk.AccAddress(a.DepositAcc).Equals(DepositAddress(a.Address())) {
		return fmt.Errorf("deposit account %s is not derived from auction %s", sdk.AccAddress(a.DepositAcc), a.Address())
	}
	if (a.HighestBid == 0) != !a.HasBid() {
		return fmt.Errorf("highest bid (%d) and bidder (%s) disagree", a.HighestBid, a.Bidder())
	}

	return nil
}

// Marshal encodes the auction for storage.
func (a *Auction) Marshal() ([]byte, error) {
	return protobuf.Encode(a)
}

// Unmarshal decodes a stored auction.
func (a *Auction) Unmarshal(bz []byte) error {
	return protobuf.Decode(bz, a)
}

func (a Auction) String() string {
	return fmt.Sprintf(
		"Auction{address: %s, seller: %s, asset: %s@%s, payment: %s, min_price: %d, highest_bid: %d, bidder: %s}",
		a.Address(), sdk.AccAddress(a.Seller), a.AssetMint, sdk.AccAddress(a.AssetAcc), a.PaymentMint, a.MinPrice, a.HighestBid, a.Bidder(),
	)
}
