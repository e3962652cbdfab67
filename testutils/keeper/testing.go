package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
)

// NewTestLedger returns a Ledger for use in tests.
func NewTestLedger(t testing.TB) *Ledger {
	l, err := NewLedger(log.NewNopLogger())
	require.NoError(t, err)

	return l
}
