package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/golang/mock/gomock"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

func (suite *KeeperTestSuite) TestMsgUpdateParams() {
	cases := []struct {
		name      string
		msg       *types.MsgUpdateParams
		expectErr error
	}{
		{
			name: "authority updates params",
			msg: &types.MsgUpdateParams{
				Authority: suite.authorityAccount.String(),
				Params:    types.NewParams(true, true),
			},
		},
		{
			name: "other signer is rejected",
			msg: &types.MsgUpdateParams{
				Authority: suite.seller.String(),
				Params:    types.NewParams(true, true),
			},
			expectErr: sdkerrors.ErrUnauthorized,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			_, err := suite.msgServer.UpdateParams(suite.ctx, tc.msg)
			params, perr := suite.auctionkeeper.GetParams(suite.ctx)
			suite.Require().NoError(perr)

			if tc.expectErr != nil {
				suite.Require().ErrorIs(err, tc.expectErr)
				suite.Require().Equal(types.DefaultParams(), params)
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal(tc.msg.Params, params)
		})
	}
}

func (suite *KeeperTestSuite) TestMsgListing() {
	auctionAddr := types.AuctionAddress(suite.seller, assetMint)

	suite.expectMint(paymentMint, 6)
	suite.expectMint(assetMint, 0)
	suite.expectBalance(suite.seller, assetMint, 1)
	suite.expectAccountCreation(types.DepositAddress(auctionAddr))
	suite.authzKeeper.EXPECT().SaveGrant(gomock.Any(), auctionAddr, suite.seller, gomock.Any(), nil).Return(nil)

	msg := types.NewMsgListing(suite.seller, suite.seller, paymentMint, assetMint, 1, 500)
	msg.Auction = auctionAddr.String()
	msg.DepositAccount = types.DepositAddress(auctionAddr).String()

	_, err := suite.msgServer.Listing(suite.ctx, msg)
	suite.Require().NoError(err)
	suite.Require().True(suite.auctionkeeper.HasAuction(suite.ctx, auctionAddr))

	events := suite.ctx.EventManager().Events()
	suite.Require().NotEmpty(events)
	suite.Require().Equal(types.EventTypeListing, events[len(events)-1].Type)
}

func (suite *KeeperTestSuite) TestMsgListingRejectsMalformedAddress() {
	msg := types.NewMsgListing(suite.seller, suite.seller, paymentMint, assetMint, 1, 500)
	msg.AssetAccount = "not-an-address"

	_, err := suite.msgServer.Listing(suite.ctx, msg)
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidAddress)
}

func (suite *KeeperTestSuite) TestMsgBid() {
	auction := suite.openAuction(600, suite.bidder1)
	deposit := sdk.AccAddress(auction.DepositAcc)

	suite.expectBalance(suite.bidder2, paymentMint, 1000)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), deposit, suite.bidder1, coins(600)).Return(nil)
	suite.bankKeeper.EXPECT().SendCoins(gomock.Any(), suite.bidder2, deposit, coins(700)).Return(nil)

	msg := types.NewMsgBid(suite.bidder2, suite.bidder2, auction.Address(), suite.bidder1, deposit, paymentMint, 700)
	_, err := suite.msgServer.Bid(suite.ctx, msg)
	suite.Require().NoError(err)

	stored, err := suite.auctionkeeper.GetAuction(suite.ctx, auction.Address())
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(700), stored.HighestBid)
	suite.Require().Equal(suite.bidder2, stored.Bidder())

	events := suite.ctx.EventManager().Events()
	suite.Require().Equal(types.EventTypeBid, events[len(events)-1].Type)
}

func (suite *KeeperTestSuite) TestMsgBidZeroAmount() {
	auction := suite.openAuction(0, nil)

	msg := types.NewMsgBid(suite.bidder1, suite.bidder1, auction.Address(), nil, auction.DepositAcc, paymentMint, 0)
	_, err := suite.msgServer.Bid(suite.ctx, msg)
	suite.Require().ErrorIs(err, types.ErrInsufficientAccount)
}
