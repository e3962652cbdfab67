package types

const (
	EventTypeListing = "listing"
	EventTypeBid     = "bid"

	EventAttrAuction     = "auction"
	EventAttrSeller      = "seller"
	EventAttrAssetMint   = "asset_mint"
	EventAttrAssetAcc    = "asset_account"
	EventAttrPaymentMint = "payment_mint"
	EventAttrDeposit     = "deposit_account"
	EventAttrMinPrice    = "min_price"
	EventAttrApproved    = "approved_amount"
	EventAttrBidder      = "bidder"
	EventAttrBid         = "bid"
	EventAttrRefunded    = "refunded_account"
	EventAttrRefund      = "refund"
)
