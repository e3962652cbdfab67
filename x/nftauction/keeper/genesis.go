package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// InitGenesis initializes the nftauction module's state from a given genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	if err := gs.Validate(); err != nil {
		panic(err)
	}

	// Set the nftauction module's parameters.
	if err := k.SetParams(ctx, gs.Params); err != nil {
		panic(err)
	}

	for _, auction := range gs.Auctions {
		deposit := sdk.AccAddress(auction.DepositAcc)
		if !k.accountKeeper.HasAccount(ctx, deposit) {
			k.accountKeeper.SetAccount(ctx, k.accountKeeper.NewAccountWithAddress(ctx, deposit))
		}

		if err := k.SetAuction(ctx, auction); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns a GenesisState for a given context.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	auctions, err := k.GetAuctions(ctx)
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(params, auctions)
}
