package keeper

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// sendMsgType is the authz message type approvals are recorded under.
var sendMsgType = sdk.MsgTypeURL(&banktypes.MsgSend{})

// transfer moves amount of denom from one account to another. authority must
// be one of:
//   - from itself;
//   - the auction whose derived bid escrow is from;
//   - a grantee holding a send authorization from `from` covering amount.
//
// Delegated transfers consume the grant. The transfer either moves the full
// amount or fails without effect.
func (k Keeper) transfer(ctx sdk.Context, from, to, authority sdk.AccAddress, denom string, amount uint64) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))

	switch {
	case authority.Equals(from):
	case k.isEscrowSigner(ctx, from, authority):
	default:
		if err := k.spendAllowance(ctx, from, to, authority, coins); err != nil {
			return err
		}
	}

	return k.bankKeeper.SendCoins(ctx, from, to, coins)
}

// isEscrowSigner reports whether authority is an auction acting as the
// signer of its own bid escrow account.
func (k Keeper) isEscrowSigner(ctx sdk.Context, escrow, authority sdk.AccAddress) bool {
	if !types.DepositAddress(authority).Equals(escrow) {
		return false
	}

	auction, err := k.GetAuction(ctx, authority)
	if err != nil {
		return false
	}

	return escrow.Equals(sdk.AccAddress(auction.DepositAcc))
}

// spendAllowance charges coins against the send authorization granted by
// owner to delegate. A partially spent grant keeps its expiration.
func (k Keeper) spendAllowance(ctx sdk.Context, owner, to, delegate sdk.AccAddress, coins sdk.Coins) error {
	authorization, expiration := k.authzKeeper.GetAuthorization(ctx, delegate, owner, sendMsgType)
	if authorization == nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not authorized to transfer from %s", delegate, owner)
	}

	resp, err := authorization.Accept(ctx, &banktypes.MsgSend{
		FromAddress: owner.String(),
		ToAddress:   to.String(),
		Amount:      coins,
	})
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s cannot transfer %s from %s: %s", delegate, coins, owner, err)
	}

	if !resp.Accept {
		return errorsmod.Wrapf(types.ErrUnauthorized, "transfer of %s from %s rejected", coins, owner)
	}

	switch {
	case resp.Delete:
		return k.authzKeeper.DeleteGrant(ctx, delegate, owner, sendMsgType)
	case resp.Updated != nil:
		return k.authzKeeper.SaveGrant(ctx, delegate, owner, resp.Updated, expiration)
	}

	return nil
}

// approve grants delegate a transfer ceiling of amount of denom out of owner.
// Custody stays with owner. authority must be the owner. A zero amount
// revokes any existing approval.
func (k Keeper) approve(ctx sdk.Context, owner, delegate, authority sdk.AccAddress, denom string, amount uint64) error {
	if !authority.Equals(owner) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner of %s", authority, owner)
	}

	if amount == 0 {
		if existing, _ := k.authzKeeper.GetAuthorization(ctx, delegate, owner, sendMsgType); existing == nil {
			return nil
		}
		return k.authzKeeper.DeleteGrant(ctx, delegate, owner, sendMsgType)
	}

	spendLimit := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	var grant authz.Authorization = banktypes.NewSendAuthorization(spendLimit, nil)

	return k.authzKeeper.SaveGrant(ctx, delegate, owner, grant, nil)
}

// balance returns the amount of denom held by addr, saturating at the maximum
// uint64 value.
func (k Keeper) balance(ctx sdk.Context, addr sdk.AccAddress, denom string) uint64 {
	amount := k.bankKeeper.GetBalance(ctx, addr, denom).Amount
	if amount.IsNil() || !amount.IsPositive() {
		return 0
	}
	if !amount.IsUint64() {
		return math.MaxUint64
	}

	return amount.Uint64()
}
