// Package main is the entry point for the storage controller CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	useFake    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "storage-controller",
	Short: "Automated storage and crafting controller",
	Long: `storage-controller manages a group of inventory peripherals: it tracks
item totals across chests, moves items between storage, input and output
locations, and resolves the ingredients needed to craft an item from the
recipe registry.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the controller config file")
	rootCmd.PersistentFlags().BoolVar(&useFake, "fake", false, "Run against a seeded in-memory world instead of the gateway")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(loadRecipesCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
