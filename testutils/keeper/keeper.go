// Package keeper provides methods to initialize SDK keepers with local storage for test purposes
package keeper

import (
	"strings"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	authzkeeper "github.com/cosmos/cosmos-sdk/x/authz/keeper"
	authzmodule "github.com/cosmos/cosmos-sdk/x/authz/module"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	auctionkeeper "github.com/skip-mev/nft-auction/x/nftauction/keeper"
	auctiontypes "github.com/skip-mev/nft-auction/x/nftauction/types"
)

// FaucetModuleName is the module account that mints test funds.
const FaucetModuleName = "faucet"

var (
	ExampleTimestamp = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ExampleHeight    = int64(1)
)

// Ledger is an in-memory chain state with real auth, bank and authz keepers
// and the nftauction keeper wired on top of them.
type Ledger struct {
	Ctx   sdk.Context
	Codec codec.Codec

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	AuthzKeeper   authzkeeper.Keeper
	AuctionKeeper auctionkeeper.Keeper

	AuctionMsgServer   *auctionkeeper.MsgServer
	AuctionQueryServer *auctionkeeper.QueryServer
}

// NewLedger mounts the module stores on a fresh in-memory database and
// initializes all keepers.
func NewLedger(logger log.Logger) (*Ledger, error) {
	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		authzkeeper.StoreKey,
		auctiontypes.StoreKey,
	)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, err
	}

	encCfg := moduletestutil.MakeTestEncodingConfig(
		auth.AppModuleBasic{},
		bank.AppModuleBasic{},
		authzmodule.AppModuleBasic{},
	)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	maccPerms := map[string][]string{
		FaucetModuleName: {authtypes.Minter},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		encCfg.Codec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		addresscodec.NewBech32Codec(sdk.Bech32MainPrefix),
		sdk.Bech32MainPrefix,
		authority,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		encCfg.Codec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		accountKeeper,
		map[string]bool{},
		authority,
		logger,
	)

	authzKeeper := authzkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[authzkeeper.StoreKey]),
		encCfg.Codec,
		baseapp.NewMsgServiceRouter(),
		accountKeeper,
	)

	auctionKeeper := auctionkeeper.NewKeeper(
		keys[auctiontypes.StoreKey],
		accountKeeper,
		bankKeeper,
		authzKeeper,
		authority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		Time:   ExampleTimestamp,
		Height: ExampleHeight,
	}, false, logger)

	if err := bankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		return nil, err
	}

	if err := auctionKeeper.SetParams(ctx, auctiontypes.DefaultParams()); err != nil {
		return nil, err
	}

	return &Ledger{
		Ctx:                ctx,
		Codec:              encCfg.Codec,
		AccountKeeper:      accountKeeper,
		BankKeeper:         bankKeeper,
		AuthzKeeper:        authzKeeper,
		AuctionKeeper:      auctionKeeper,
		AuctionMsgServer:   auctionkeeper.NewMsgServerImpl(auctionKeeper),
		AuctionQueryServer: auctionkeeper.NewQueryServer(auctionKeeper),
	}, nil
}

// CreateDenom registers bank metadata for denom with the given number of
// decimals.
func (l *Ledger) CreateDenom(denom string, decimals uint32) {
	md := banktypes.Metadata{
		Base:       denom,
		Display:    denom,
		Name:       denom,
		Symbol:     strings.ToUpper(denom),
		DenomUnits: []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
	}

	if decimals > 0 {
		md.Display = strings.ToUpper(denom)
		md.DenomUnits = append(md.DenomUnits, &banktypes.DenomUnit{Denom: md.Display, Exponent: decimals})
	}

	l.BankKeeper.SetDenomMetaData(l.Ctx, md)
}

// Fund mints coins to addr through the faucet module account.
func (l *Ledger) Fund(addr sdk.AccAddress, coins sdk.Coins) error {
	if err := l.BankKeeper.MintCoins(l.Ctx, FaucetModuleName, coins); err != nil {
		return err
	}

	return l.BankKeeper.SendCoinsFromModuleToAccount(l.Ctx, FaucetModuleName, addr, coins)
}

// FundAmount mints amount of denom to addr.
func (l *Ledger) FundAmount(addr sdk.AccAddress, denom string, amount uint64) error {
	return l.Fund(addr, sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount))))
}

// Balance returns the amount of denom held by addr.
func (l *Ledger) Balance(addr sdk.AccAddress, denom string) uint64 {
	return l.BankKeeper.GetBalance(l.Ctx, addr, denom).Amount.Uint64()
}
