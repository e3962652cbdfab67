package types

import errorsmod "cosmossdk.io/errors"

// x/nftauction module sentinel errors
var (
	ErrAssetInvalid          = errorsmod.Register(ModuleName, 2, "asset not non-fungible token")
	ErrInvalidAccount        = errorsmod.Register(ModuleName, 3, "invalid account")
	ErrInvalidLastBidAccount = errorsmod.Register(ModuleName, 4, "invalid last bid account")
	ErrInsufficientAccount   = errorsmod.Register(ModuleName, 5, "insufficient bidding account")
	ErrAuctionExists         = errorsmod.Register(ModuleName, 6, "auction already initialized")
	ErrAuctionNotFound       = errorsmod.Register(ModuleName, 7, "auction not found")
	ErrBidTooLow             = errorsmod.Register(ModuleName, 8, "bid too low")
	ErrUnauthorized          = errorsmod.Register(ModuleName, 9, "unauthorized transfer authority")
)
