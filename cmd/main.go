package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "market-screener",
	Short: "A CLI for managing the market screener dashboard services",
	Long:  `Market screener dashboard: scan orchestration, result projections and asset detail over a remote analytics service.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
