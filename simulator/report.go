package simulator

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Index  int
	Action string
	Signer string
	Asset  string
	Amount uint64
	Err    error
	Passed bool
}

type AuctionRow struct {
	Auction    string
	Seller     string
	Asset      string
	MinPrice   uint64
	HighestBid uint64
	Leader     string
	Escrow     uint64
	Denom      string
}

type BalanceRow struct {
	Account string
	Denom   string
	Amount  uint64
}

// Report summarizes a scenario run.
type Report struct {
	Steps    []StepResult
	Auctions []AuctionRow
	Balances []BalanceRow

	// Invariant holds the message of the first broken invariant, if any.
	Invariant string
}

// Failed reports whether a step missed its expected outcome or an invariant
// was broken.
func (r *Report) Failed() bool {
	if r.Invariant != "" {
		return true
	}

	for _, step := range r.Steps {
		if !step.Passed {
			return true
		}
	}

	return false
}

// Balance returns the final amount of denom held by the named account.
func (r *Report) Balance(account, denom string) uint64 {
	for _, row := range r.Balances {
		if row.Account == account && row.Denom == denom {
			return row.Amount
		}
	}

	return 0
}

// Write prints the report as aligned tables.
func (r *Report) Write(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "STEP\tACTION\tSIGNER\tASSET\tAMOUNT\tRESULT")
	for _, step := range r.Steps {
		result := "ok"
		if step.Err != nil {
			result = step.Err.Error()
		}
		if !step.Passed {
			result = "FAIL: " + result
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", step.Index, step.Action, step.Signer, step.Asset, step.Amount, result)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "AUCTION\tSELLER\tASSET\tMIN PRICE\tHIGHEST BID\tLEADER\tESCROW")
	for _, row := range r.Auctions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%d%s\n", row.Auction, row.Seller, row.Asset, row.MinPrice, row.HighestBid, row.Leader, row.Escrow, row.Denom)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ACCOUNT\tDENOM\tBALANCE")
	for _, row := range r.Balances {
		fmt.Fprintf(w, "%s\t%s\t%d\n", row.Account, row.Denom, row.Amount)
	}

	if r.Invariant != "" {
		fmt.Fprintf(w, "\n%s", r.Invariant)
	}

	return w.Flush()
}
