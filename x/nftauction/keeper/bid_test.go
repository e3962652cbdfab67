package keeper_test

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/golang/mock/gomock"

	testutils "github.com/skip-mev/nft-auction/testutils"
	"github.com/skip-mev/nft-auction/x/nftauction/keeper"
	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

func (suite *KeeperTestSuite) bid(auction types.Auction, bidder sdk.AccAddress, amount uint64) keeper.Bid {
	return keeper.Bid{
		Bidder:      bidder,
		PaymentMint: paymentMint,
		BiddingAcc:  bidder,
		Auction:     auction.Address(),
		LastBidder:  auction.Bidder(),
		Deposit:     auction.DepositAcc,
		Amount:      amount,
	}
}

func coins(amount uint64) sdk.Coins {
	return sdk.NewCoins(testutils.Coin(paymentMint, amount))
}

func (suite *KeeperTestSuite) TestFirstBid() {
	auction := suite.openAuction(0, nil)
	deposit := sdk.AccAddress(auction.DepositAcc)

	suite.expectBalance(suite.bidder1, paymentMint, 600)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder1, deposit, coins(600)).Return(nil)

	updated, err := suite.auctionkeeper.Bid(suite.ctx, suite.bid(auction, suite.bidder1, 600))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(600), updated.HighestBid)
	suite.Require().Equal(suite.bidder1, updated.Bidder())

	stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auction.Address())
	suite.Require().NoError(err)
	suite.Require().Equal(updated, stored)
}

func (suite *KeeperTestSuite) TestOutbidRefundsLeader() {
	auction := suite.openAuction(600, suite.bidder1)
	deposit := sdk.AccAddress(auction.DepositAcc)

	suite.expectBalance(suite.bidder2, paymentMint, 700)
	gomock.InOrder(
		suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), deposit, suite.bidder1, coins(600)).Return(nil),
		suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder2, deposit, coins(700)).Return(nil),
	)

	updated, err := suite.auctionkeeper.Bid(suite.ctx, suite.bid(auction, suite.bidder2, 700))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(700), updated.HighestBid)
	suite.Require().Equal(suite.bidder2, updated.Bidder())
}

func (suite *KeeperTestSuite) TestEqualBidReplacesLeader() {
	auction := suite.openAuction(600, suite.bidder1)
	deposit := sdk.AccAddress(auction.DepositAcc)

	suite.expectBalance(suite.bidder2, paymentMint, 600)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), deposit, suite.bidder1, coins(600)).Return(nil)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder2, deposit, coins(600)).Return(nil)

	updated, err := suite.auctionkeeper.Bid(suite.ctx, suite.bid(auction, suite.bidder2, 600))
	suite.Require().NoError(err)
	suite.Require().Equal(suite.bidder2, updated.Bidder())
}

// TestBidValidation checks that every rejected bid fails before any funds
// move. The bank mock has no SendCoins expectation, so any transfer attempt
// fails the test.
func (suite *KeeperTestSuite) TestBidValidation() {
	cases := []struct {
		name     string
		params   types.Params
		setup    func(auction types.Auction)
		modify   func(b *keeper.Bid)
		expected error
	}{
		{
			name:     "zero amount",
			modify:   func(b *keeper.Bid) { b.Amount = 0 },
			expected: types.ErrInsufficientAccount,
		},
		{
			name:     "unknown auction",
			modify:   func(b *keeper.Bid) { b.Auction = suite.bidder2 },
			expected: types.ErrAuctionNotFound,
		},
		{
			name:     "payment mint mismatch",
			modify:   func(b *keeper.Bid) { b.PaymentMint = "uatom" },
			expected: types.ErrInvalidAccount,
		},
		{
			name: "balance below highest bid",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 50)
			},
			modify:   func(b *keeper.Bid) { b.Amount = 80 },
			expected: types.ErrInsufficientAccount,
		},
		{
			name: "balance below amount",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 150)
			},
			modify:   func(b *keeper.Bid) { b.Amount = 200 },
			expected: types.ErrInsufficientAccount,
		},
		{
			name: "spoofed deposit account",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 200)
			},
			modify:   func(b *keeper.Bid) { b.Deposit = suite.bidder2 },
			expected: types.ErrInvalidAccount,
		},
		{
			name: "spoofed previous leader",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 200)
			},
			modify:   func(b *keeper.Bid) { b.LastBidder = suite.seller },
			expected: types.ErrInvalidLastBidAccount,
		},
		{
			name: "missing previous leader",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 200)
			},
			modify:   func(b *keeper.Bid) { b.LastBidder = nil },
			expected: types.ErrInvalidLastBidAccount,
		},
		{
			name: "bid below highest bid from a funded account",
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 1000)
			},
			modify:   func(b *keeper.Bid) { b.Amount = 50 },
			expected: types.ErrBidTooLow,
		},
		{
			name:   "equal bid with strict increase",
			params: types.NewParams(false, true),
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 200)
			},
			modify:   func(b *keeper.Bid) { b.Amount = 100 },
			expected: types.ErrBidTooLow,
		},
		{
			name:   "bid below minimum price",
			params: types.NewParams(true, false),
			setup: func(types.Auction) {
				suite.expectBalance(suite.bidder2, paymentMint, 200)
			},
			expected: types.ErrBidTooLow,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.Require().NoError(suite.auctionkeeper.SetParams(suite.ctx, tc.params))

			auction := suite.openAuction(100, suite.bidder1)
			if tc.setup != nil {
				tc.setup(auction)
			}

			bid := suite.bid(auction, suite.bidder2, 150)
			if tc.modify != nil {
				tc.modify(&bid)
			}

			_, err := suite.auctionkeeper.Bid(suite.ctx, bid)
			suite.Require().ErrorIs(err, tc.expected)

			stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auction.Address())
			suite.Require().NoError(err)
			suite.Require().Equal(auction, stored)
		})
	}
}

func (suite *KeeperTestSuite) TestFailedDepositRollsBackRefund() {
	auction := suite.openAuction(600, suite.bidder1)
	deposit := sdk.AccAddress(auction.DepositAcc)

	suite.expectBalance(suite.bidder2, paymentMint, 700)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), deposit, suite.bidder1, coins(600)).Return(nil)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder2, deposit, coins(700)).Return(fmt.Errorf("insufficient funds"))

	_, err := suite.auctionkeeper.Bid(suite.ctx, suite.bid(auction, suite.bidder2, 700))
	suite.Require().Error(err)

	stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auction.Address())
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(600), stored.HighestBid)
	suite.Require().Equal(suite.bidder1, stored.Bidder())
}

func (suite *KeeperTestSuite) TestDelegatedBid() {
	auction := suite.openAuction(0, nil)
	deposit := sdk.AccAddress(auction.DepositAcc)
	msgType := sdk.MsgTypeURL(&banktypes.MsgSend{})

	// bidder2 bids with funds held by bidder1, who granted it 1000
	grant := banktypes.NewSendAuthorization(coins(1000), nil)
	suite.expectBalance(suite.bidder1, paymentMint, 1000)
	suite.authzKeeper.EXPECT().GetAuthorization(gomock.Any(), suite.bidder2, suite.bidder1, msgType).Return(grant, nil)
	suite.authzKeeper.EXPECT().SaveGrant(gomock.Any(), suite.bidder2, suite.bidder1, gomock.Any(), nil).DoAndReturn(
		func(_ interface{}, _, _ sdk.AccAddress, updated *banktypes.SendAuthorization, _ interface{}) error {
			suite.Require().Equal(coins(600), updated.SpendLimit)
			return nil
		},
	)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder1, deposit, coins(400)).Return(nil)

	bid := suite.bid(auction, suite.bidder2, 400)
	bid.BiddingAcc = suite.bidder1

	updated, err := suite.auctionkeeper.Bid(suite.ctx, bid)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.bidder1, updated.Bidder())
}

func (suite *KeeperTestSuite) TestBidWithoutAuthority() {
	auction := suite.openAuction(0, nil)
	msgType := sdk.MsgTypeURL(&banktypes.MsgSend{})

	suite.expectBalance(suite.bidder1, paymentMint, 1000)
	suite.authzKeeper.EXPECT().GetAuthorization(gomock.Any(), suite.bidder2, suite.bidder1, msgType).Return(nil, nil)

	bid := suite.bid(auction, suite.bidder2, 400)
	bid.BiddingAcc = suite.bidder1

	_, err := suite.auctionkeeper.Bid(suite.ctx, bid)
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auction.Address())
	suite.Require().NoError(err)
	suite.Require().False(stored.HasBid())
}

func (suite *KeeperTestSuite) TestDelegatedBidKeepsGrantExpiration() {
	auction := suite.openAuction(0, nil)
	deposit := sdk.AccAddress(auction.DepositAcc)
	msgType := sdk.MsgTypeURL(&banktypes.MsgSend{})
	expiration := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	grant := banktypes.NewSendAuthorization(coins(1000), nil)
	suite.expectBalance(suite.bidder1, paymentMint, 1000)
	suite.authzKeeper.EXPECT().GetAuthorization(gomock.Any(), suite.bidder2, suite.bidder1, msgType).Return(grant, &expiration)
	suite.authzKeeper.EXPECT().SaveGrant(gomock.Any(), suite.bidder2, suite.bidder1, gomock.Any(), &expiration).Return(nil)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder1, deposit, coins(100)).Return(nil)

	bid := suite.bid(auction, suite.bidder2, 100)
	bid.BiddingAcc = suite.bidder1

	_, err := suite.auctionkeeper.Bid(suite.ctx, bid)
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestDelegatedBidSpendsWholeGrant() {
	auction := suite.openAuction(0, nil)
	deposit := sdk.AccAddress(auction.DepositAcc)
	msgType := sdk.MsgTypeURL(&banktypes.MsgSend{})

	grant := banktypes.NewSendAuthorization(coins(400), nil)
	suite.expectBalance(suite.bidder1, paymentMint, 1000)
	suite.authzKeeper.EXPECT().GetAuthorization(gomock.Any(), suite.bidder2, suite.bidder1, msgType).Return(grant, nil)
	suite.authzKeeper.EXPECT().DeleteGrant(gomock.Any(), suite.bidder2, suite.bidder1, msgType).Return(nil)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder1, deposit, coins(400)).Return(nil)

	bid := suite.bid(auction, suite.bidder2, 400)
	bid.BiddingAcc = suite.bidder1

	_, err := suite.auctionkeeper.Bid(suite.ctx, bid)
	suite.Require().NoError(err)
}
