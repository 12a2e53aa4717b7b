package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voxforge/storage-api/internal/entities/items"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <item> <count>",
	Short: "Move an item from storage into the output location",
	Args:  cobra.ExactArgs(2),
	RunE:  runWithdraw,
}

func runWithdraw(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("count must be a number: %w", err)
	}
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	group, err := newGroup(ctx, cfg, newLogger())
	if err != nil {
		return err
	}

	output, err := group.Inventory(ctx, cfg.Storage.OutputLocation)
	if err != nil {
		return err
	}

	name := args[0]
	moved, err := group.MoveItemFromMany(ctx, group.Handles(items.RoleStorage), output, name, count)
	if err != nil {
		return err
	}

	if moved < count {
		fmt.Printf("withdrew %d of %d %s (storage had no more, or the output is full)\n", moved, count, name)
		return nil
	}
	fmt.Printf("withdrew %d %s\n", moved, name)
	return nil
}
