package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// QueryServer defines the nftauction module's querier service.
type QueryServer struct {
	keeper Keeper
}

// NewQueryServer creates a new query server for the nftauction module.
func NewQueryServer(keeper Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

func (q QueryServer) Auction(goCtx context.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	auction, err := q.keeper.GetAuction(sdk.UnwrapSDKContext(goCtx), addr)
	if err != nil {
		return nil, err
	}

	return &types.QueryAuctionResponse{Auction: auction}, nil
}

func (q QueryServer) Auctions(goCtx context.Context, req *types.QueryAuctionsRequest) (*types.QueryAuctionsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := prefix.NewStore(ctx.KVStore(q.keeper.storeKey), types.KeyAuctions)

	var auctions []types.Auction
	pageRes, err := query.Paginate(store, req.Pagination, func(_, value []byte) error {
		var auction types.Auction
		if err := auction.Unmarshal(value); err != nil {
			return err
		}

		auctions = append(auctions, auction)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryAuctionsResponse{Auctions: auctions, Pagination: pageRes}, nil
}

func (q QueryServer) Params(goCtx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.keeper.GetParams(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}
