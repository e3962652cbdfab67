// Package simulator replays scripted listings and bids against an in-memory
// ledger and reports the resulting auctions and balances.
package simulator

import (
	"errors"
	"fmt"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	testkeeper "github.com/skip-mev/nft-auction/testutils/keeper"
	"github.com/skip-mev/nft-auction/x/nftauction/keeper"
	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

// Simulator executes a Scenario step by step.
type Simulator struct {
	logger   log.Logger
	scenario Scenario
	ledger   *testkeeper.Ledger
	board    *Leaderboard

	accounts map[string]sdk.AccAddress
	names    map[string]string
}

// AccountAddress returns the address a named scenario account maps to.
func AccountAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

// New builds a fresh ledger, registers the scenario denoms and funds the
// scenario accounts.
func New(logger log.Logger, sc Scenario) (*Simulator, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	ledger, err := testkeeper.NewLedger(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	s := &Simulator{
		logger:   logger.With("module", "simulator"),
		scenario: sc,
		ledger:   ledger,
		board:    NewLeaderboard(),
		accounts: make(map[string]sdk.AccAddress, len(sc.Accounts)),
		names:    make(map[string]string, len(sc.Accounts)),
	}

	if err := ledger.AuctionKeeper.SetParams(ledger.Ctx, types.NewParams(sc.Params.EnforceMinPrice, sc.Params.RequireBidIncrease)); err != nil {
		return nil, err
	}

	for _, denom := range sc.Denoms {
		ledger.CreateDenom(denom.Denom, denom.Decimals)
	}

	for _, acc := range sc.Accounts {
		addr := AccountAddress(acc.Name)
		s.accounts[acc.Name] = addr
		s.names[addr.String()] = acc.Name

		for _, coin := range acc.Balances {
			if err := ledger.FundAmount(addr, coin.Denom, coin.Amount); err != nil {
				return nil, fmt.Errorf("failed to fund %s: %w", acc.Name, err)
			}
		}
	}

	return s, nil
}

// Ledger returns the ledger the scenario runs on.
func (s *Simulator) Ledger() *testkeeper.Ledger {
	return s.ledger
}

// Run executes every step in order. A step that does not produce its expected
// outcome is recorded as failed and the run continues. Invariants are checked
// after every step.
func (s *Simulator) Run() *Report {
	report := &Report{}

	for i, step := range s.scenario.Steps {
		err := s.execute(step)

		result := StepResult{
			Index:  i,
			Action: step.Action,
			Signer: step.Signer,
			Asset:  step.Asset,
			Amount: step.Amount,
			Err:    err,
			Passed: s.matches(step, err),
		}
		report.Steps = append(report.Steps, result)

		if !result.Passed {
			s.logger.Error("step failed", "step", i, "action", step.Action, "signer", step.Signer, "expect", step.Expect, "err", err)
		} else {
			s.logger.Debug("step done", "step", i, "action", step.Action, "signer", step.Signer, "err", err)
		}

		if msg, broken := keeper.AllInvariants(s.ledger.AuctionKeeper)(s.ledger.Ctx); broken {
			report.Invariant = msg
			s.logger.Error("invariant broken", "step", i, "msg", msg)
			break
		}
	}

	report.Auctions = s.auctionRows()
	report.Balances = s.balanceRows()

	return report
}

func (s *Simulator) matches(step StepConfig, err error) bool {
	if step.Expect == "" {
		return err == nil
	}

	return errors.Is(err, expectedErrors[step.Expect])
}

func (s *Simulator) execute(step StepConfig) error {
	switch step.Action {
	case ActionGrant:
		return s.grant(step)
	case ActionList:
		return s.list(step)
	case ActionBid:
		return s.bid(step)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

// account returns the address for name, or the address for fallback when
// name is empty.
func (s *Simulator) account(name, fallback string) sdk.AccAddress {
	if name == "" {
		name = fallback
	}

	return s.accounts[name]
}

func (s *Simulator) grant(step StepConfig) error {
	granter := s.account(step.Signer, "")
	grantee := s.account(step.Grantee, "")
	if grantee == nil {
		return fmt.Errorf("grant requires a grantee")
	}

	limit := sdk.NewCoins(sdk.NewCoin(step.PaymentMint, sdkmath.NewIntFromUint64(step.Amount)))
	return s.ledger.AuthzKeeper.SaveGrant(s.ledger.Ctx, grantee, granter, banktypes.NewSendAuthorization(limit, nil), nil)
}

func (s *Simulator) list(step StepConfig) error {
	seller := s.account(step.Signer, "")
	assetAcc := s.account(step.Account, step.Signer)

	amount := step.Amount
	if amount == 0 {
		amount = 1
	}

	msg := types.NewMsgListing(seller, assetAcc, step.PaymentMint, step.Asset, amount, step.MinPrice)
	if _, err := s.ledger.AuctionMsgServer.Listing(s.ledger.Ctx, msg); err != nil {
		return err
	}

	auction, err := s.ledger.AuctionKeeper.GetAuction(s.ledger.Ctx, types.AuctionAddress(assetAcc, step.Asset))
	if err != nil {
		return err
	}

	s.board.Insert(auction)
	return nil
}

func (s *Simulator) bid(step StepConfig) error {
	bidder := s.account(step.Signer, "")
	biddingAcc := s.account(step.Account, step.Signer)
	auctionAddr := types.AuctionAddress(s.account(step.Owner, step.Signer), step.Asset)

	prev, err := s.ledger.AuctionKeeper.GetAuction(s.ledger.Ctx, auctionAddr)
	if err != nil {
		return err
	}

	lastBidder := prev.Bidder()
	if step.LastBidder != "" {
		lastBidder = s.accounts[step.LastBidder]
	}

	paymentMint := step.PaymentMint
	if paymentMint == "" {
		paymentMint = prev.PaymentMint
	}

	msg := types.NewMsgBid(bidder, biddingAcc, auctionAddr, lastBidder, types.DepositAddress(auctionAddr), paymentMint, step.Amount)
	if _, err := s.ledger.AuctionMsgServer.Bid(s.ledger.Ctx, msg); err != nil {
		return err
	}

	next, err := s.ledger.AuctionKeeper.GetAuction(s.ledger.Ctx, auctionAddr)
	if err != nil {
		return err
	}

	s.board.Update(prev, next)
	return nil
}

// name returns the scenario name of addr, or its bech32 form for addresses
// outside the scenario.
func (s *Simulator) name(addr sdk.AccAddress) string {
	if len(addr) == 0 {
		return "-"
	}
	if name, ok := s.names[addr.String()]; ok {
		return name
	}

	return addr.String()
}

func (s *Simulator) auctionRows() []AuctionRow {
	auctions := s.board.Auctions()
	rows := make([]AuctionRow, 0, len(auctions))

	for _, auction := range auctions {
		rows = append(rows, AuctionRow{
			Auction:    auction.Address().String(),
			Seller:     s.name(auction.Seller),
			Asset:      auction.AssetMint,
			MinPrice:   auction.MinPrice,
			HighestBid: auction.HighestBid,
			Leader:     s.name(auction.Bidder()),
			Escrow:     s.ledger.Balance(auction.DepositAcc, auction.PaymentMint),
			Denom:      auction.PaymentMint,
		})
	}

	return rows
}

func (s *Simulator) balanceRows() []BalanceRow {
	var rows []BalanceRow
	for _, acc := range s.scenario.Accounts {
		for _, denom := range s.scenario.Denoms {
			rows = append(rows, BalanceRow{
				Account: acc.Name,
				Denom:   denom.Denom,
				Amount:  s.ledger.Balance(s.accounts[acc.Name], denom.Denom),
			})
		}
	}

	return rows
}
