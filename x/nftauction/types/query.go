package types

import "github.com/cosmos/cosmos-sdk/types/query"

type QueryAuctionRequest struct {
	// Address is the bech32 address of the auction record.
	Address string
}

type QueryAuctionResponse struct {
	Auction Auction
}

type QueryAuctionsRequest struct {
	Pagination *query.PageRequest
}

type QueryAuctionsResponse struct {
	Auctions   []Auction
	Pagination *query.PageResponse
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params
}
