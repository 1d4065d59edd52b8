package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.LLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No LLM requests logged.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				model,
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one logged request with its body and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.LLMRequests(context.Background(), 0)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		for _, r := range records {
			if r.ID != id {
				continue
			}
			fmt.Printf("ID:        %d\n", r.ID)
			fmt.Printf("Timestamp: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Provider:  %s\n", r.Provider)
			fmt.Printf("Model:     %s\n", r.Model)
			fmt.Printf("Purpose:   %s\n", r.Purpose)
			fmt.Printf("Tokens:    %d in / %d out\n", r.InputTokens, r.OutputTokens)
			fmt.Printf("Latency:   %dms\n", r.LatencyMs)
			if r.ErrorMessage != "" {
				fmt.Printf("Error:     %s\n", r.ErrorMessage)
			}
			fmt.Printf("\n--- Request ---\n%s\n", r.RequestBody)
			fmt.Printf("\n--- Response ---\n%s\n", r.ResponseBody)
			return nil
		}
		return fmt.Errorf("no request with id %d", id)
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum rows to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (examgen, grading)")
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
}
