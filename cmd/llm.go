package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liuyang/duwen/internal/requestlog"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded model requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

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
		entries, err := store.Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No model requests recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-8s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range entries {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-8s  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				truncate(e.ID, 8),
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for a recorded model call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idPrefix := args[0]

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
		entries, err := store.Recent(ctx, 1000)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		var match *requestlog.Entry
		for i := range entries {
			if strings.HasPrefix(entries[i].ID, idPrefix) {
				if match != nil {
					return fmt.Errorf("id %q is ambiguous, use more characters", idPrefix)
				}
				match = &entries[i]
			}
		}
		if match == nil {
			return fmt.Errorf("request %q not found", idPrefix)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %s\n", match.ID)
		fmt.Printf("Time:      %s\n", match.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", match.Provider)
		fmt.Printf("Model:     %s\n", match.Model)
		fmt.Printf("Purpose:   %s\n", match.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", match.InputTokens, match.OutputTokens)
		fmt.Printf("Latency:   %dms\n", match.LatencyMs)
		fmt.Printf("Success:   %v\n", match.Success)
		if match.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", match.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if match.RequestBody != "" {
			fmt.Println(match.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if match.ResponseBody != "" {
			fmt.Println(match.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. quiz-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
}
