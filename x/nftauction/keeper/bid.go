package keeper

import (
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// Bid describes a challenger's bid on an auction. LastBidder may be nil when
// the auction has no leader yet.
type Bid struct {
	Bidder      sdk.AccAddress
	PaymentMint string
	BiddingAcc  sdk.AccAddress
	Auction     sdk.AccAddress
	LastBidder  sdk.AccAddress
	Deposit     sdk.AccAddress
	Amount      uint64
}

// Bid refunds the current leader from the bid escrow, moves Amount from the
// bidding account into the escrow and records the bidding account as the new
// leader. All checks run before any funds move, and the refund, the deposit
// and the record update commit together or not at all.
func (k Keeper) Bid(ctx sdk.Context, bid Bid) (types.Auction, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.EventTypeBid)

	auction, err := k.ValidateBid(ctx, bid)
	if err != nil {
		return types.Auction{}, err
	}

	auctionAddr := auction.Address()
	deposit := sdk.AccAddress(auction.DepositAcc)
	lastBidder := auction.Bidder()
	refund := auction.HighestBid

	cacheCtx, write := ctx.CacheContext()

	if lastBidder != nil {
		if err := k.transfer(cacheCtx, deposit, lastBidder, auctionAddr, auction.PaymentMint, refund); err != nil {
			return types.Auction{}, errorsmod.Wrap(err, "failed to refund previous bidder")
		}
	}

	if err := k.transfer(cacheCtx, bid.BiddingAcc, deposit, bid.Bidder, auction.PaymentMint, bid.Amount); err != nil {
		return types.Auction{}, errorsmod.Wrap(err, "failed to escrow bid")
	}

	auction.HighestBid = bid.Amount
	auction.BidderAcc = bid.BiddingAcc
	if err := k.SetAuction(cacheCtx, auction); err != nil {
		return types.Auction{}, err
	}

	write()

	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.EventAttrAuction, auctionAddr.String()),
		sdk.NewAttribute(types.EventAttrBidder, bid.BiddingAcc.String()),
		sdk.NewAttribute(types.EventAttrBid, strconv.FormatUint(bid.Amount, 10)),
	}
	if lastBidder != nil {
		attrs = append(attrs,
			sdk.NewAttribute(types.EventAttrRefunded, lastBidder.String()),
			sdk.NewAttribute(types.EventAttrRefund, strconv.FormatUint(refund, 10)),
		)
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeBid, attrs...))

	telemetry.IncrCounter(1, types.ModuleName, types.EventTypeBid)

	k.Logger(ctx).Info(
		"bid accepted",
		"auction", auctionAddr.String(),
		"bidder", bid.BiddingAcc.String(),
		"amount", bid.Amount,
		"refunded", refund,
	)

	return auction, nil
}

// ValidateBid runs the checks a bid must pass before any funds move and
// returns the auction it targets.
func (k Keeper) ValidateBid(ctx sdk.Context, bid Bid) (types.Auction, error) {
	if bid.Amount == 0 {
		return types.Auction{}, errorsmod.Wrap(types.ErrInsufficientAccount, "bid amount must be positive")
	}

	auction, err := k.GetAuction(ctx, bid.Auction)
	if err != nil {
		return types.Auction{}, err
	}

	if bid.PaymentMint != auction.PaymentMint {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "bidding account mint %s does not match payment mint %s", bid.PaymentMint, auction.PaymentMint)
	}

	// The funding balance must cover both the current highest bid and the
	// declared amount.
	balance := k.balance(ctx, bid.BiddingAcc, auction.PaymentMint)
	if balance < auction.HighestBid || balance < bid.Amount {
		return types.Auction{}, errorsmod.Wrapf(
			types.ErrInsufficientAccount,
			"balance %d does not cover bid %d and highest bid %d",
			balance, bid.Amount, auction.HighestBid,
		)
	}

	if expected := types.AuctionAddress(auction.AssetAcc, auction.AssetMint); !expected.Equals(bid.Auction) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "auction %s is not derived from its asset account; expected %s", bid.Auction, expected)
	}

	if !bid.Deposit.Equals(sdk.AccAddress(auction.DepositAcc)) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "deposit account %s does not belong to auction %s", bid.Deposit, bid.Auction)
	}

	if auction.HasBid() && !bid.LastBidder.Equals(auction.Bidder()) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidLastBidAccount, "expected %s, got %s", auction.Bidder(), bid.LastBidder)
	}

	if bid.Amount < auction.HighestBid {
		return types.Auction{}, errorsmod.Wrapf(types.ErrBidTooLow, "bid %d is below the highest bid %d", bid.Amount, auction.HighestBid)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Auction{}, err
	}

	if params.EnforceMinPrice && bid.Amount < auction.MinPrice {
		return types.Auction{}, errorsmod.Wrapf(types.ErrBidTooLow, "bid %d is below the minimum price %d", bid.Amount, auction.MinPrice)
	}

	// an equal bid replaces the leader unless RequireBidIncrease is set
	if params.RequireBidIncrease && auction.HasBid() && bid.Amount == auction.HighestBid {
		return types.Auction{}, errorsmod.Wrapf(types.ErrBidTooLow, "bid %d does not exceed the highest bid %d", bid.Amount, auction.HighestBid)
	}

	return auction, nil
}
