package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past exam attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		attempts, err := st.Attempts(context.Background())
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts yet. Run `bcabuddy exam` to take one.")
			return nil
		}

		fmt.Printf("%-12s  %-4s  %-30s  %5s  %4s  %4s  %4s  %5s\n",
			"Date", "Sem", "Subject", "Score", "✓", "✗", "–", "Mins")
		fmt.Println(strings.Repeat("─", 82))

		// Stored oldest first; print newest first.
		for i := len(attempts) - 1; i >= 0; i-- {
			a := attempts[i]
			subject := a.Subject
			if len(subject) > 30 {
				subject = subject[:29] + "…"
			}
			fmt.Printf("%-12s  %-4d  %-30s  %4.0f%%  %4d  %4d  %4d  %5d\n",
				a.At.Local().Format("2006-01-02"), a.Semester, subject,
				a.PercentTotal, a.Correct, a.Incorrect, a.Skipped, a.DurationMinutes)
		}
		return nil
	},
}
