package main

import (
	"os"

	"github.com/skip-mev/nft-auction/cmd/auctionsim/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
