package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List every stored item with its total",
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	group, err := newGroup(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	names := group.ItemNames()
	if len(names) == 0 {
		fmt.Println("storage is empty")
		return nil
	}
	for _, name := range names {
		fmt.Printf("%-40s %6d\n", name, group.TotalCount(ctx, name))
	}
	return nil
}
