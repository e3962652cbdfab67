package types

import "fmt"

// GenesisState defines the nftauction module's genesis state.
type GenesisState struct {
	Params   Params
	Auctions []Auction
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(params Params, auctions []Auction) *GenesisState {
	return &GenesisState{
		Params:   params,
		Auctions: auctions,
	}
}

// DefaultGenesisState returns the default GenesisState instance.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic validation of the nftauction module genesis state.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Auctions))
	for _, auction := range gs.Auctions {
		if err := auction.Validate(); err != nil {
			return err
		}

		addr := auction.Address().String()
		if _, ok := seen[addr]; ok {
			return fmt.Errorf("duplicate auction %s", addr)
		}
		seen[addr] = struct{}{}
	}

	return nil
}
