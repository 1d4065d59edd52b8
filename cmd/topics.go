package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/weaktopic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List tracked weak topics and their review schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		dueOnly, _ := cmd.Flags().GetBool("due")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		topics, err := st.WeakTopics(context.Background())
		if err != nil {
			return fmt.Errorf("load weak topics: %w", err)
		}

		now := time.Now()
		if dueOnly {
			topics = weaktopic.Due(topics, now)
		}
		if len(topics) == 0 {
			if dueOnly {
				fmt.Println("Nothing due for revision. Nice.")
			} else {
				fmt.Println("No weak topics tracked yet.")
			}
			return nil
		}

		fmt.Printf("%-24s  %-36s  %-10s  %8s\n", "Subject", "Topic", "Due", "Interval")
		fmt.Println(strings.Repeat("─", 86))

		for _, t := range topics {
			due := t.DueAt.Local().Format("2006-01-02")
			if !t.DueAt.After(now) {
				due = "now"
			}
			topic := t.Topic
			if len(topic) > 36 {
				topic = topic[:35] + "…"
			}
			subject := t.Subject
			if len(subject) > 24 {
				subject = subject[:23] + "…"
			}
			fmt.Printf("%-24s  %-36s  %-10s  %7dd\n", subject, topic, due, t.LastInterval)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().Bool("due", false, "Only show topics due for revision")
}
