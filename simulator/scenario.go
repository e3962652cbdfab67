package simulator

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// Step actions.
const (
	ActionGrant = "grant"
	ActionList  = "list"
	ActionBid   = "bid"
)

// Scenario is a scripted run against a fresh local ledger.
type Scenario struct {
	LogLevel string          `mapstructure:"log_level"`
	Params   ParamsConfig    `mapstructure:"params"`
	Denoms   []DenomConfig   `mapstructure:"denoms"`
	Accounts []AccountConfig `mapstructure:"accounts"`
	Steps    []StepConfig    `mapstructure:"steps"`
}

type ParamsConfig struct {
	EnforceMinPrice    bool `mapstructure:"enforce_min_price"`
	RequireBidIncrease bool `mapstructure:"require_bid_increase"`
}

type DenomConfig struct {
	Denom    string `mapstructure:"denom"`
	Decimals uint32 `mapstructure:"decimals"`
}

type CoinConfig struct {
	Denom  string `mapstructure:"denom"`
	Amount uint64 `mapstructure:"amount"`
}

// AccountConfig is a named account and its starting balances.
type AccountConfig struct {
	Name     string       `mapstructure:"name"`
	Balances []CoinConfig `mapstructure:"balances"`
}

// StepConfig is a single action. Which fields apply depends on Action:
//
//	list:  Signer lists Asset held by Account (default Signer) for PaymentMint.
//	bid:   Signer bids Amount from Account (default Signer) on the auction for
//	       Asset held by Owner. LastBidder defaults to the current leader.
//	grant: Signer lets Grantee move up to Amount of PaymentMint out of Signer.
//
// Expect names the error the step must fail with; empty means it must succeed.
type StepConfig struct {
	Action      string `mapstructure:"action"`
	Signer      string `mapstructure:"signer"`
	Account     string `mapstructure:"account"`
	Owner       string `mapstructure:"owner"`
	Grantee     string `mapstructure:"grantee"`
	LastBidder  string `mapstructure:"last_bidder"`
	Asset       string `mapstructure:"asset"`
	PaymentMint string `mapstructure:"payment_mint"`
	Amount      uint64 `mapstructure:"amount"`
	MinPrice    uint64 `mapstructure:"min_price"`
	Expect      string `mapstructure:"expect"`
}

var expectedErrors = map[string]error{
	"asset_invalid":            types.ErrAssetInvalid,
	"invalid_account":          types.ErrInvalidAccount,
	"invalid_last_bid_account": types.ErrInvalidLastBidAccount,
	"insufficient_account":     types.ErrInsufficientAccount,
	"auction_exists":           types.ErrAuctionExists,
	"auction_not_found":        types.ErrAuctionNotFound,
	"bid_too_low":              types.ErrBidTooLow,
	"unauthorized":             types.ErrUnauthorized,
}

// Validate checks that every step refers to declared accounts and known
// actions.
func (sc Scenario) Validate() error {
	names := make(map[string]struct{}, len(sc.Accounts))
	for _, acc := range sc.Accounts {
		if acc.Name == "" {
			return fmt.Errorf("account name cannot be empty")
		}
		if _, ok := names[acc.Name]; ok {
			return fmt.Errorf("duplicate account %q", acc.Name)
		}
		names[acc.Name] = struct{}{}
	}

	known := func(name string) error {
		if name == "" {
			return nil
		}
		if _, ok := names[name]; !ok {
			return fmt.Errorf("unknown account %q", name)
		}
		return nil
	}

	for i, step := range sc.Steps {
		switch step.Action {
		case ActionGrant, ActionList, ActionBid:
		default:
			return fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}

		if step.Signer == "" {
			return fmt.Errorf("step %d: signer cannot be empty", i)
		}

		for _, name := range []string{step.Signer, step.Account, step.Owner, step.Grantee, step.LastBidder} {
			if err := known(name); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}

		switch step.Action {
		case ActionGrant:
			if step.Grantee == "" {
				return fmt.Errorf("step %d: grant requires a grantee", i)
			}
			if step.PaymentMint == "" {
				return fmt.Errorf("step %d: grant requires a payment_mint", i)
			}
		case ActionList:
			if step.Asset == "" {
				return fmt.Errorf("step %d: list requires an asset", i)
			}
			if step.PaymentMint == "" {
				return fmt.Errorf("step %d: list requires a payment_mint", i)
			}
		case ActionBid:
			if step.Asset == "" {
				return fmt.Errorf("step %d: bid requires an asset", i)
			}
		}

		// a bid may leave payment_mint empty to reuse the listing's mint
		if step.PaymentMint != "" {
			if err := sdk.ValidateDenom(step.PaymentMint); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}

		if step.Expect != "" {
			if _, ok := expectedErrors[step.Expect]; !ok {
				return fmt.Errorf("step %d: unknown expected error %q", i, step.Expect)
			}
		}
	}

	return nil
}

// DefaultScenario lists a single asset and has it outbid once.
func DefaultScenario() Scenario {
	return Scenario{
		LogLevel: "info",
		Denoms: []DenomConfig{
			{Denom: "uusdc", Decimals: 6},
			{Denom: "nft/punk-1", Decimals: 0},
		},
		Accounts: []AccountConfig{
			{Name: "seller", Balances: []CoinConfig{{Denom: "nft/punk-1", Amount: 1}}},
			{Name: "alice", Balances: []CoinConfig{{Denom: "uusdc", Amount: 1000}}},
			{Name: "bob", Balances: []CoinConfig{{Denom: "uusdc", Amount: 1000}}},
		},
		Steps: []StepConfig{
			{Action: ActionList, Signer: "seller", Asset: "nft/punk-1", PaymentMint: "uusdc", Amount: 1, MinPrice: 500},
			{Action: ActionBid, Signer: "alice", Owner: "seller", Asset: "nft/punk-1", Amount: 600},
			{Action: ActionBid, Signer: "bob", Owner: "seller", Asset: "nft/punk-1", Amount: 700},
			{Action: ActionBid, Signer: "alice", Owner: "seller", Asset: "nft/punk-1", LastBidder: "seller", Amount: 800, Expect: "invalid_last_bid_account"},
		},
	}
}
