package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/golang/mock/gomock"

	testutils "github.com/skip-mev/nft-auction/testutils"
	"github.com/skip-mev/nft-auction/x/nftauction/keeper"
	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

func (suite *KeeperTestSuite) listing() keeper.Listing {
	return keeper.Listing{
		Seller:      suite.seller,
		PaymentMint: paymentMint,
		AssetMint:   assetMint,
		AssetAcc:    suite.seller,
		Amount:      1,
		MinPrice:    500,
	}
}

func (suite *KeeperTestSuite) expectAccountCreation(addr sdk.AccAddress) {
	suite.accountKeeper.EXPECT().HasAccount(gomock.Any(), addr).Return(false)
	suite.accountKeeper.EXPECT().NewAccountWithAddress(gomock.Any(), addr).Return(authtypes.NewBaseAccountWithAddress(addr))
	suite.accountKeeper.EXPECT().SetAccount(gomock.Any(), gomock.Any())
}

func (suite *KeeperTestSuite) TestListing() {
	auctionAddr := types.AuctionAddress(suite.seller, assetMint)
	depositAddr := types.DepositAddress(auctionAddr)

	suite.expectMint(paymentMint, 6)
	suite.expectMint(assetMint, 0)
	suite.expectBalance(suite.seller, assetMint, 1)
	suite.expectAccountCreation(depositAddr)

	suite.authzKeeper.EXPECT().SaveGrant(gomock.Any(), auctionAddr, suite.seller, gomock.Any(), nil).DoAndReturn(
		func(_ interface{}, _, _ sdk.AccAddress, grant *banktypes.SendAuthorization, _ interface{}) error {
			suite.Require().Equal(sdk.NewCoins(testutils.Coin(assetMint, 1)), grant.SpendLimit)
			return nil
		},
	)

	auction, err := suite.auctionkeeper.Listing(suite.ctx, suite.listing())
	suite.Require().NoError(err)

	suite.Require().Equal(auctionAddr, auction.Address())
	suite.Require().Equal(depositAddr, sdk.AccAddress(auction.DepositAcc))
	suite.Require().Equal(uint64(0), auction.HighestBid)
	suite.Require().False(auction.HasBid())
	suite.Require().Equal(uint64(500), auction.MinPrice)

	stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auctionAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.seller, sdk.AccAddress(stored.Seller))
	suite.Require().Equal(paymentMint, stored.PaymentMint)
	suite.Require().NoError(stored.Validate())

	// A second listing for the same asset account is rejected and leaves the
	// first record untouched.
	_, err = suite.auctionkeeper.Listing(suite.ctx, keeper.Listing{
		Seller:      suite.seller,
		PaymentMint: paymentMint,
		AssetMint:   assetMint,
		AssetAcc:    suite.seller,
		Amount:      1,
		MinPrice:    1,
	})
	suite.Require().ErrorIs(err, types.ErrAuctionExists)

	again, err := suite.auctionkeeper.GetAuction(suite.ctx, auctionAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(stored, again)
}

func (suite *KeeperTestSuite) TestListingValidation() {
	cases := []struct {
		name     string
		setup    func()
		modify   func(l *keeper.Listing)
		expected error
	}{
		{
			name: "asset with decimals",
			setup: func() {
				suite.expectMint(assetMint, 6)
			},
			expected: types.ErrAssetInvalid,
		},
		{
			name: "unknown asset mint",
			setup: func() {
				suite.bankKeeper.EXPECT().GetDenomMetaData(gomock.Any(), assetMint).Return(banktypes.Metadata{}, false)
				suite.bankKeeper.EXPECT().HasSupply(gomock.Any(), assetMint).Return(false)
			},
			expected: types.ErrInvalidAccount,
		},
		{
			name: "unknown payment mint",
			setup: func() {
				suite.expectMint(assetMint, 0)
				suite.bankKeeper.EXPECT().GetDenomMetaData(gomock.Any(), paymentMint).Return(banktypes.Metadata{}, false)
				suite.bankKeeper.EXPECT().HasSupply(gomock.Any(), paymentMint).Return(false)
			},
			expected: types.ErrInvalidAccount,
		},
		{
			name: "asset account does not hold the asset",
			setup: func() {
				suite.expectMint(assetMint, 0)
				suite.expectMint(paymentMint, 6)
				suite.expectBalance(suite.seller, assetMint, 0)
			},
			expected: types.ErrInvalidAccount,
		},
		{
			name: "auction address not derived from the asset account",
			setup: func() {
				suite.expectMint(assetMint, 0)
				suite.expectMint(paymentMint, 6)
				suite.expectBalance(suite.seller, assetMint, 1)
			},
			modify: func(l *keeper.Listing) {
				l.Auction = types.AuctionAddress(suite.bidder1, assetMint)
			},
			expected: types.ErrInvalidAccount,
		},
		{
			name: "deposit address not derived from the auction",
			setup: func() {
				suite.expectMint(assetMint, 0)
				suite.expectMint(paymentMint, 6)
				suite.expectBalance(suite.seller, assetMint, 1)
			},
			modify: func(l *keeper.Listing) {
				l.Deposit = suite.bidder1
			},
			expected: types.ErrInvalidAccount,
		},
		{
			name: "seller does not own the asset account",
			setup: func() {
				suite.expectMint(assetMint, 0)
				suite.expectMint(paymentMint, 6)
				suite.expectBalance(suite.bidder1, assetMint, 1)
				suite.expectAccountCreation(types.DepositAddress(types.AuctionAddress(suite.bidder1, assetMint)))
			},
			modify: func(l *keeper.Listing) {
				l.AssetAcc = suite.bidder1
			},
			expected: types.ErrUnauthorized,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			tc.setup()

			listing := suite.listing()
			if tc.modify != nil {
				tc.modify(&listing)
			}

			_, err := suite.auctionkeeper.Listing(suite.ctx, listing)
			suite.Require().ErrorIs(err, tc.expected)

			// nothing is committed on failure
			suite.Require().False(suite.auctionkeeper.HasAuction(suite.ctx, types.AuctionAddress(listing.AssetAcc, assetMint)))
		})
	}
}

func (suite *KeeperTestSuite) TestListingWithoutMetadata() {
	auctionAddr := types.AuctionAddress(suite.seller, assetMint)

	suite.bankKeeper.EXPECT().GetDenomMetaData(gomock.Any(), assetMint).Return(banktypes.Metadata{}, false)
	suite.bankKeeper.EXPECT().HasSupply(gomock.Any(), assetMint).Return(true)
	suite.expectMint(paymentMint, 6)
	suite.expectBalance(suite.seller, assetMint, 1)
	suite.expectAccountCreation(types.DepositAddress(auctionAddr))
	suite.authzKeeper.EXPECT().SaveGrant(gomock.Any(), auctionAddr, suite.seller, gomock.Any(), nil).Return(nil)

	_, err := suite.auctionkeeper.Listing(suite.ctx, suite.listing())
	suite.Require().NoError(err)
}
