package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgListing escrows a non-fungible asset and opens an auction for it.
type MsgListing struct {
	// Seller signs the listing and must own AssetAccount.
	Seller string
	// PaymentMint is the denom bids are paid in.
	PaymentMint string
	// AssetMint is the denom of the asset. It must have zero decimals.
	AssetMint string
	// AssetAccount holds the asset.
	AssetAccount string
	// Auction and DepositAccount are the addresses the caller expects the
	// auction and its bid escrow to be created at. They are optional; when
	// set they must match the derived addresses.
	Auction        string
	DepositAccount string
	// Amount is the transfer ceiling over AssetAccount granted to the auction.
	Amount uint64
	// MinPrice is the seller's advisory floor.
	MinPrice uint64
}

type MsgListingResponse struct{}

// MsgBid places a bid on an open auction, refunding the previous leader.
type MsgBid struct {
	// Bidder signs the bid and must be able to move funds out of
	// BiddingAccount.
	Bidder string
	// PaymentMint is the denom of the funds being bid.
	PaymentMint string
	// BiddingAccount funds the bid and becomes the refund destination.
	BiddingAccount string
	// Auction is the auction record address.
	Auction string
	// LastBidderAccount must match the current leader when there is one.
	LastBidderAccount string
	// DepositAccount is the auction's bid escrow.
	DepositAccount string
	// Amount is the bid.
	Amount uint64
}

type MsgBidResponse struct{}

// MsgUpdateParams updates the module parameters. Only the module authority
// may execute it.
type MsgUpdateParams struct {
	Authority string
	Params    Params
}

type MsgUpdateParamsResponse struct{}

// NewMsgListing returns a listing message with derived auction addresses left
// for the keeper to compute.
func NewMsgListing(seller, assetAcc sdk.AccAddress, paymentMint, assetMint string, amount, minPrice uint64) *MsgListing {
	return &MsgListing{
		Seller:       seller.String(),
		PaymentMint:  paymentMint,
		AssetMint:    assetMint,
		AssetAccount: assetAcc.String(),
		Amount:       amount,
		MinPrice:     minPrice,
	}
}

// GetSigners returns the expected signers for a MsgListing message.
func (m MsgListing) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Seller)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Seller); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid seller address")
	}

	if _, err := sdk.AccAddressFromBech32(m.AssetAccount); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid asset account address")
	}

	if err := validateOptionalAddress(m.Auction); err != nil {
		return errorsmod.Wrap(err, "invalid auction address")
	}

	if err := validateOptionalAddress(m.DepositAccount); err != nil {
		return errorsmod.Wrap(err, "invalid deposit account address")
	}

	if err := sdk.ValidateDenom(m.PaymentMint); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}

	if err := sdk.ValidateDenom(m.AssetMint); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}

	return nil
}

// NewMsgBid returns a bid message for the given auction.
func NewMsgBid(bidder, biddingAcc, auction, lastBidder, deposit sdk.AccAddress, paymentMint string, amount uint64) *MsgBid {
	msg := &MsgBid{
		Bidder:         bidder.String(),
		PaymentMint:    paymentMint,
		BiddingAccount: biddingAcc.String(),
		Auction:        auction.String(),
		DepositAccount: deposit.String(),
		Amount:         amount,
	}
	if len(lastBidder) > 0 {
		msg.LastBidderAccount = lastBidder.String()
	}

	return msg
}

// GetSigners returns the expected signers for a MsgBid message.
func (m MsgBid) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Bidder)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Bidder); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid bidder address")
	}

	if _, err := sdk.AccAddressFromBech32(m.BiddingAccount); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid bidding account address")
	}

	if _, err := sdk.AccAddressFromBech32(m.Auction); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid auction address")
	}

	if _, err := sdk.AccAddressFromBech32(m.DepositAccount); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "invalid deposit account address")
	}

	if err := validateOptionalAddress(m.LastBidderAccount); err != nil {
		return errorsmod.Wrap(err, "invalid last bidder address")
	}

	if err := sdk.ValidateDenom(m.PaymentMint); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}

	if m.Amount == 0 {
		return errorsmod.Wrap(ErrInsufficientAccount, "bid amount must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for a MsgUpdateParams message.
func (m MsgUpdateParams) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return errorsmod.Wrap(err, "invalid authority address")
	}

	return m.Params.Validate()
}

func validateOptionalAddress(addr string) error {
	if addr == "" {
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	return nil
}
