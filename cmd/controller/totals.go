package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalsCmd = &cobra.Command{
	Use:   "totals <item>",
	Short: "Show the stored total of one item",
	Long: `Show how many units of an item are available across every storage and
output inventory. Items sitting in the input location are earmarked for
crafting and are not counted.`,
	Args: cobra.ExactArgs(1),
	RunE: runTotals,
}

func runTotals(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	group, err := newGroup(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	name := args[0]
	fmt.Printf("%s: %d\n", name, group.TotalCount(ctx, name))
	return nil
}
