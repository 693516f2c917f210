package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Atchuta30/JEE-Prep-AI/internal/app"
	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
	"github.com/Atchuta30/JEE-Prep-AI/internal/llm"
	"github.com/Atchuta30/JEE-Prep-AI/internal/papergen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate and attempt a question paper",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, establishes the profile, builds the LLM
// provider chain and starts the TUI. Shared by the bare root command
// and "play".
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	explicitUser, _ := cmd.Flags().GetString("user")
	session, err := identity.Establish(ctx, st.UserRepo(), identity.ResolveName(explicitUser))
	if err != nil {
		return err
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY.")
		return err
	}

	return app.Run(app.Deps{
		Generator: papergen.New(provider, papergen.DefaultConfig()),
		Papers:    st.PaperRepo(),
		Session:   session,
	})
}
