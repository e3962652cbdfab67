package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// RegisterInvariants registers the nftauction module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "deposit-balance", DepositBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "bidder-consistency", BidderConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the nftauction module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := DepositBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return BidderConsistencyInvariant(k)(ctx)
	}
}

// DepositBalanceInvariant checks that every bid escrow holds exactly the
// highest bid of its auction.
func DepositBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)

		err := k.IterateAuctions(ctx, func(auction types.Auction) bool {
			held := k.balance(ctx, auction.DepositAcc, auction.PaymentMint)
			if held != auction.HighestBid {
				broken++
				msg += fmt.Sprintf("\tauction %s escrow holds %d%s, highest bid is %d\n", auction.Address(), held, auction.PaymentMint, auction.HighestBid)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "deposit-balance", err.Error()), true
		}

		return sdk.FormatInvariant(
			types.ModuleName, "deposit-balance",
			fmt.Sprintf("%d auctions with mismatched escrow\n%s", broken, msg),
		), broken != 0
	}
}

// BidderConsistencyInvariant checks that an auction has a leading bidder iff
// its highest bid is non-zero.
func BidderConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)

		err := k.IterateAuctions(ctx, func(auction types.Auction) bool {
			if (auction.HighestBid == 0) != !auction.HasBid() {
				broken++
				msg += fmt.Sprintf("\tauction %s highest bid %d with bidder %q\n", auction.Address(), auction.HighestBid, auction.Bidder().String())
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "bidder-consistency", err.Error()), true
		}

		return sdk.FormatInvariant(
			types.ModuleName, "bidder-consistency",
			fmt.Sprintf("%d auctions with inconsistent bidder\n%s", broken, msg),
		), broken != 0
	}
}
