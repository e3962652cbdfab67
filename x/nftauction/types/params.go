package types

import "go.dedis.ch/protobuf"

var (
	DefaultEnforceMinPrice    = false
	DefaultRequireBidIncrease = false
)

// Params defines the nftauction module parameters.
type Params struct {
	// EnforceMinPrice rejects bids below the auction's MinPrice.
	EnforceMinPrice bool
	// RequireBidIncrease rejects bids that do not strictly exceed the
	// current highest bid. When disabled a bid equal to the highest bid
	// replaces the leader.
	RequireBidIncrease bool
}

// NewParams returns a new Params instance with the provided values.
func NewParams(enforceMinPrice, requireBidIncrease bool) Params {
	return Params{
		EnforceMinPrice:    enforceMinPrice,
		RequireBidIncrease: requireBidIncrease,
	}
}

// DefaultParams returns the default x/nftauction parameters.
func DefaultParams() Params {
	return NewParams(DefaultEnforceMinPrice, DefaultRequireBidIncrease)
}

// Validate performs basic validation on the parameters. Every combination of
// the boolean flags is valid, so it only exists as the hook UpdateParams and
// genesis validation call.
func (p Params) Validate() error {
	return nil
}

// Marshal encodes the params for storage.
func (p *Params) Marshal() ([]byte, error) {
	return protobuf.Encode(p)
}

// Unmarshal decodes stored params.
func (p *Params) Unmarshal(bz []byte) error {
	return protobuf.Decode(bz, p)
}
