package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voxforge/storage-api/internal/orchestrators/crafting"
)

var planCmd = &cobra.Command{
	Use:   "plan <item> <count>",
	Short: "Resolve the ingredients needed to craft an item",
	Long: `Resolve the bill of materials for crafting the requested number of an
item against current storage totals and the recipe registry. Prints the
total requirements, what is missing from storage, and the recipe
invocations in execution order.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("count must be a number: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()
	group, err := newGroup(ctx, cfg, logger)
	if err != nil {
		return err
	}
	resolver, err := newResolver(cfg, group, logger)
	if err != nil {
		return err
	}

	out, err := resolver.GatherIngredients(ctx, &crafting.GatherIngredientsInput{
		ItemName: args[0],
		Count:    count,
	})
	if err != nil {
		return err
	}

	fmt.Printf("plan %s\n\n", out.PlanID)

	fmt.Println("requirements:")
	for _, name := range sortedKeys(out.Requirements) {
		fmt.Printf("  %-40s %6d\n", name, out.Requirements[name])
	}

	if len(out.Missing) > 0 {
		fmt.Println("\nmissing:")
		for _, name := range sortedKeys(out.Missing) {
			fmt.Printf("  %-40s %6d\n", name, out.Missing[name])
		}
	}

	if len(out.Plan) == 0 {
		fmt.Println("\nnothing to craft, stock covers the request")
		return nil
	}

	// Steps are recorded outermost first; execution runs them in reverse
	// so dependencies are crafted before their consumers.
	fmt.Println("\nsteps:")
	for i := len(out.Plan) - 1; i >= 0; i-- {
		step := out.Plan[i]
		fmt.Printf("  craft %s x%d (%d invocations of %s)\n",
			step.Recipe.Output.Name,
			step.Recipe.Output.Count*step.Invocations,
			step.Invocations,
			step.Recipe.Type)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
