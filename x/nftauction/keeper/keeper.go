package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

type Keeper struct {
	storeKey storetypes.StoreKey

	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	authzKeeper   types.AuthzKeeper

	// The address that is capable of executing a MsgUpdateParams message.
	// Typically this will be the governance module's address.
	authority string
}

func NewKeeper(
	storeKey storetypes.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	authzKeeper types.AuthzKeeper,
	authority string,
) Keeper {
	// Ensure that the authority address is valid.
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(err)
	}

	return Keeper{
		storeKey:      storeKey,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authzKeeper:   authzKeeper,
		authority:     authority,
	}
}

// Logger returns a nftauction module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetAuthority returns the address that is capable of executing a MsgUpdateParams message.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetParams returns the nftauction module's parameters.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	store := ctx.KVStore(k.storeKey)

	bz := store.Get(types.KeyParams)
	if bz == nil {
		return types.Params{}, fmt.Errorf("no params found for the nftauction module")
	}

	params := types.Params{}
	if err := params.Unmarshal(bz); err != nil {
		return types.Params{}, err
	}

	return params, nil
}

// SetParams sets the nftauction module's parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	store := ctx.KVStore(k.storeKey)

	bz, err := params.Marshal()
	if err != nil {
		return err
	}

	// all-default params may encode to no bytes; the store rejects nil values
	if bz == nil {
		bz = []byte{}
	}

	store.Set(types.KeyParams, bz)

	return nil
}

// HasAuction reports whether an auction record exists at the given address.
func (k Keeper) HasAuction(ctx sdk.Context, addr sdk.AccAddress) bool {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyAuctions)
	return store.Has(types.AuctionKey(addr))
}

// GetAuction returns the auction record stored at the given address.
func (k Keeper) GetAuction(ctx sdk.Context, addr sdk.AccAddress) (types.Auction, error) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyAuctions)

	bz := store.Get(types.AuctionKey(addr))
	if bz == nil {
		return types.Auction{}, errorsmod.Wrapf(types.ErrAuctionNotFound, "no auction at %s", addr)
	}

	var auction types.Auction
	if err := auction.Unmarshal(bz); err != nil {
		return types.Auction{}, err
	}

	return auction, nil
}

// SetAuction writes an auction record at its derived address.
func (k Keeper) SetAuction(ctx sdk.Context, auction types.Auction) error {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyAuctions)

	bz, err := auction.Marshal()
	if err != nil {
		return err
	}

	store.Set(types.AuctionKey(auction.Address()), bz)

	return nil
}

// IterateAuctions calls cb for every stored auction until cb returns true.
func (k Keeper) IterateAuctions(ctx sdk.Context, cb func(auction types.Auction) (stop bool)) error {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyAuctions)
	iterator := storetypes.KVStorePrefixIterator(store, []byte{})

	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var auction types.Auction
		if err := auction.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		if cb(auction) {
			break
		}
	}

	return nil
}

// GetAuctions returns all stored auctions.
func (k Keeper) GetAuctions(ctx sdk.Context) ([]types.Auction, error) {
	var auctions []types.Auction
	err := k.IterateAuctions(ctx, func(auction types.Auction) bool {
		auctions = append(auctions, auction)
		return false
	})

	return auctions, err
}
