package keeper

import (
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// Listing describes a request to open an auction. Auction and Deposit are the
// addresses presented by the caller; nil means "derive them".
type Listing struct {
	Seller      sdk.AccAddress
	PaymentMint string
	AssetMint   string
	AssetAcc    sdk.AccAddress
	Auction     sdk.AccAddress
	Deposit     sdk.AccAddress
	Amount      uint64
	MinPrice    uint64
}

// Listing opens an auction for the asset held by AssetAcc. It creates the
// auction record and its bid escrow account at their derived addresses and
// grants the auction a transfer ceiling of Amount over the asset. Either
// every effect is committed or none is.
func (k Keeper) Listing(ctx sdk.Context, listing Listing) (types.Auction, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.EventTypeListing)

	if err := k.validateAssetMint(ctx, listing.AssetMint); err != nil {
		return types.Auction{}, err
	}

	if !k.mintExists(ctx, listing.PaymentMint) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "unknown payment mint %s", listing.PaymentMint)
	}

	if k.balance(ctx, listing.AssetAcc, listing.AssetMint) == 0 {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "%s does not hold %s", listing.AssetAcc, listing.AssetMint)
	}

	auctionAddr := types.AuctionAddress(listing.AssetAcc, listing.AssetMint)
	if len(listing.Auction) > 0 && !listing.Auction.Equals(auctionAddr) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "auction address %s is not derived from %s; expected %s", listing.Auction, listing.AssetAcc, auctionAddr)
	}

	depositAddr := types.DepositAddress(auctionAddr)
	if len(listing.Deposit) > 0 && !listing.Deposit.Equals(depositAddr) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrInvalidAccount, "deposit address %s is not derived from %s; expected %s", listing.Deposit, auctionAddr, depositAddr)
	}

	if k.HasAuction(ctx, auctionAddr) {
		return types.Auction{}, errorsmod.Wrapf(types.ErrAuctionExists, "auction %s", auctionAddr)
	}

	cacheCtx, write := ctx.CacheContext()

	if !k.accountKeeper.HasAccount(cacheCtx, depositAddr) {
		k.accountKeeper.SetAccount(cacheCtx, k.accountKeeper.NewAccountWithAddress(cacheCtx, depositAddr))
	}

	auction := types.NewAuction(listing.Seller, listing.AssetAcc, listing.PaymentMint, listing.AssetMint, listing.MinPrice)
	if err := k.SetAuction(cacheCtx, auction); err != nil {
		return types.Auction{}, err
	}

	if err := k.approve(cacheCtx, listing.AssetAcc, auctionAddr, listing.Seller, listing.AssetMint, listing.Amount); err != nil {
		return types.Auction{}, err
	}

	write()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeListing,
			sdk.NewAttribute(types.EventAttrAuction, auctionAddr.String()),
			sdk.NewAttribute(types.EventAttrSeller, listing.Seller.String()),
			sdk.NewAttribute(types.EventAttrAssetMint, listing.AssetMint),
			sdk.NewAttribute(types.EventAttrAssetAcc, listing.AssetAcc.String()),
			sdk.NewAttribute(types.EventAttrPaymentMint, listing.PaymentMint),
			sdk.NewAttribute(types.EventAttrDeposit, depositAddr.String()),
			sdk.NewAttribute(types.EventAttrMinPrice, strconv.FormatUint(listing.MinPrice, 10)),
			sdk.NewAttribute(types.EventAttrApproved, strconv.FormatUint(listing.Amount, 10)),
		),
	)

	telemetry.IncrCounter(1, types.ModuleName, types.EventTypeListing)

	k.Logger(ctx).Info(
		"auction listed",
		"auction", auctionAddr.String(),
		"asset", listing.AssetMint,
		"seller", listing.Seller.String(),
		"min_price", listing.MinPrice,
	)

	return auction, nil
}

// validateAssetMint ensures the asset mint exists and has zero decimals.
func (k Keeper) validateAssetMint(ctx sdk.Context, mint string) error {
	md, found := k.bankKeeper.GetDenomMetaData(ctx, mint)
	if !found {
		if !k.bankKeeper.HasSupply(ctx, mint) {
			return errorsmod.Wrapf(types.ErrInvalidAccount, "unknown asset mint %s", mint)
		}

		// a denom without metadata only has its base unit
		return nil
	}

	if decimals := types.Decimals(md); decimals != 0 {
		return errorsmod.Wrapf(types.ErrAssetInvalid, "%s has %d decimals", mint, decimals)
	}

	return nil
}

func (k Keeper) mintExists(ctx sdk.Context, mint string) bool {
	if _, found := k.bankKeeper.GetDenomMetaData(ctx, mint); found {
		return true
	}

	return k.bankKeeper.HasSupply(ctx, mint)
}
