package cmd

import (
	"fmt"
	"os"

	"github.com/sauravjha/bcabuddy/internal/app"
	"github.com/sauravjha/bcabuddy/internal/examgen"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/llm"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the question source and grader, and
// launches the TUI.
func runApp(cmd *cobra.Command, startExam bool) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Store:     st,
		StartExam: startExam,
	}

	// A configured backend service takes precedence over direct LLM
	// access; both produce the same Source/Grader surface.
	if base := os.Getenv("BCABUDDY_API_BASE"); base != "" {
		token := os.Getenv("BCABUDDY_API_TOKEN")
		opts.Source = examgen.NewHTTPSource(base, token)
		opts.Grader = grading.NewHTTPGrader(base, token)
	} else {
		provider, perr := llm.NewProviderFromEnv(ctx, st)
		if perr != nil {
			fmt.Fprintln(os.Stderr, "Question source not configured:", perr)
			fmt.Fprintln(os.Stderr, "Exams will be unavailable until a provider or backend is set up.")
		} else {
			opts.Source = examgen.NewLLMSource(provider, examgen.DefaultConfig())
			opts.Grader = grading.NewLLMGrader(provider)
		}
	}

	return app.Run(opts)
}
