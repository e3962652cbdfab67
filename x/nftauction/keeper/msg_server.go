package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// MsgServer is the wrapper for the nftauction module's msg service.
type MsgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the nftauction msg service.
func NewMsgServerImpl(keeper Keeper) *MsgServer {
	return &MsgServer{Keeper: keeper}
}

func (m MsgServer) Listing(goCtx context.Context, msg *types.MsgListing) (*types.MsgListingResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	// These should never return an error because the addresses were validated
	// above.
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, err
	}

	assetAcc, err := sdk.AccAddressFromBech32(msg.AssetAccount)
	if err != nil {
		return nil, err
	}

	auction, err := optionalAddress(msg.Auction)
	if err != nil {
		return nil, err
	}

	deposit, err := optionalAddress(msg.DepositAccount)
	if err != nil {
		return nil, err
	}

	if _, err := m.Keeper.Listing(ctx, Listing{
		Seller:      seller,
		PaymentMint: msg.PaymentMint,
		AssetMint:   msg.AssetMint,
		AssetAcc:    assetAcc,
		Auction:     auction,
		Deposit:     deposit,
		Amount:      msg.Amount,
		MinPrice:    msg.MinPrice,
	}); err != nil {
		return nil, err
	}

	return &types.MsgListingResponse{}, nil
}

func (m MsgServer) Bid(goCtx context.Context, msg *types.MsgBid) (*types.MsgBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		return nil, err
	}

	biddingAcc, err := sdk.AccAddressFromBech32(msg.BiddingAccount)
	if err != nil {
		return nil, err
	}

	auction, err := sdk.AccAddressFromBech32(msg.Auction)
	if err != nil {
		return nil, err
	}

	deposit, err := sdk.AccAddressFromBech32(msg.DepositAccount)
	if err != nil {
		return nil, err
	}

	lastBidder, err := optionalAddress(msg.LastBidderAccount)
	if err != nil {
		return nil, err
	}

	if _, err := m.Keeper.Bid(ctx, Bid{
		Bidder:      bidder,
		PaymentMint: msg.PaymentMint,
		BiddingAcc:  biddingAcc,
		Auction:     auction,
		LastBidder:  lastBidder,
		Deposit:     deposit,
		Amount:      msg.Amount,
	}); err != nil {
		return nil, err
	}

	return &types.MsgBidResponse{}, nil
}

func (m MsgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	// ensure that the message signer is the authority
	if msg.Authority != m.Keeper.GetAuthority() {
		return nil, errorsmod.Wrap(sdkerrors.ErrUnauthorized, fmt.Sprintf("this message can only be executed by the authority; expected %s, got %s", m.Keeper.GetAuthority(), msg.Authority))
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

func optionalAddress(addr string) (sdk.AccAddress, error) {
	if addr == "" {
		return nil, nil
	}

	return sdk.AccAddressFromBech32(addr)
}
