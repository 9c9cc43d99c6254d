package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/requestlog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show model usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		store, err := requestlog.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer store.Close()

		ctx := context.Background()
		stats, err := store.Summarize(ctx)
		if err != nil {
			return fmt.Errorf("summarize requests: %w", err)
		}

		if stats.TotalRequests == 0 {
			fmt.Println("No model usage recorded yet.")
			return nil
		}

		fmt.Println("Usage")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("Requests:     %d (%d ok, %d failed)\n", stats.TotalRequests, stats.Successes, stats.Failures)
		fmt.Printf("Tokens:       %d in / %d out\n", stats.InputTokens, stats.OutputTokens)
		fmt.Printf("Avg latency:  %.0fms\n", stats.AvgLatencyMs)

		if len(stats.ByModel) == 0 {
			return nil
		}

		models := make([]string, 0, len(stats.ByModel))
		for m := range stats.ByModel {
			models = append(models, m)
		}
		sort.Strings(models)

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, m := range models {
			ms := stats.ByModel[m]
			cost := llm.LookupCost(m)
			if cost == nil {
				unknownModels = append(unknownModels, m)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(m, 32), ms.Requests, ms.InputTokens, ms.OutputTokens, "?")
				continue
			}
			c := cost.Cost(ms.InputTokens, ms.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(m, 32), ms.Requests, ms.InputTokens, ms.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n",
			label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
