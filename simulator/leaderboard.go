package simulator

import (
	"github.com/huandu/skiplist"

	"github.com/skip-mev/nft-auction/x/nftauction/types"
)

type (
	// Leaderboard defines a list of auctions sorted by their highest bid.
	Leaderboard struct {
		list *skiplist.SkipList
	}

	leaderboardKey struct {
		bid     uint64
		auction []byte
	}
)

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		list: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			a := lhs.(leaderboardKey)
			b := rhs.(leaderboardKey)

			switch {
			case a.bid > b.bid:
				return 1

			case a.bid < b.bid:
				return -1

			default:
				// in case of a tie in bid, sort by auction address
				return skiplist.ByteAsc.Compare(a.auction, b.auction)
			}
		})),
	}
}

func keyOf(auction types.Auction) leaderboardKey {
	return leaderboardKey{bid: auction.HighestBid, auction: auction.Address()}
}

// Top returns the auction with the highest bid.
func (lb *Leaderboard) Top() (types.Auction, bool) {
	n := lb.list.Back()
	if n == nil {
		return types.Auction{}, false
	}

	return n.Value.(types.Auction), true
}

func (lb *Leaderboard) Insert(auction types.Auction) {
	lb.list.Set(keyOf(auction), auction)
}

func (lb *Leaderboard) Remove(auction types.Auction) {
	lb.list.Remove(keyOf(auction))
}

// Update replaces the entry for prev with next.
func (lb *Leaderboard) Update(prev, next types.Auction) {
	lb.Remove(prev)
	lb.Insert(next)
}

func (lb *Leaderboard) Len() int {
	return lb.list.Len()
}

// Auctions returns all auctions, highest bid first.
func (lb *Leaderboard) Auctions() []types.Auction {
	auctions := make([]types.Auction, 0, lb.list.Len())
	for n := lb.list.Front(); n != nil; n = n.Next() {
		auctions = append(auctions, n.Value.(types.Auction))
	}

	for i, j := 0, len(auctions)-1; i < j; i, j = i+1, j-1 {
		auctions[i], auctions[j] = auctions[j], auctions[i]
	}

	return auctions
}
