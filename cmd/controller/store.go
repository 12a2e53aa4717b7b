package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/storage"
)

var storeWatch bool

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Drain the output location into general storage",
	Long: `Move everything sitting in the output location into the general storage
inventories. Whatever no storage inventory has room for stays in the
output location. With --watch the drain repeats every configured period
until interrupted.`,
	RunE: runStore,
}

func init() {
	storeCmd.Flags().BoolVar(&storeWatch, "watch", false, "Keep draining every storage.period_seconds")
}

func runStore(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

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

	if !storeWatch {
		return drainOutput(ctx, group, output)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Storage.Period())
	defer ticker.Stop()

	for {
		if err := output.Resync(ctx); err != nil {
			return err
		}
		if err := drainOutput(ctx, group, output); err != nil {
			return err
		}
		select {
		case <-sigChan:
			fmt.Println("interrupted, stopping")
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func drainOutput(ctx context.Context, group *storage.Group, output *storage.Handle) error {
	before := len(output.OccupiedSlots())
	if before == 0 {
		fmt.Println("output location is empty")
		return nil
	}

	if err := group.MoveOneToMany(ctx, output, group.Handles(items.RoleStorage)); err != nil {
		return err
	}

	if left := len(output.OccupiedSlots()); left > 0 {
		fmt.Printf("stored %d slots, %d left (storage is full)\n", before-left, left)
		return nil
	}
	fmt.Printf("stored %d slots\n", before)
	return nil
}
