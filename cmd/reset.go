package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/identity"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current profile's papers, or the whole database with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset: no database at", dbPath)
			return nil
		}

		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		if all {
			if !force && !confirm(fmt.Sprintf("This deletes %s and every profile with it.", dbPath)) {
				fmt.Println("Aborted.")
				return nil
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("remove database: %w", err)
			}
			// WAL sidecar files, if present.
			_ = os.Remove(dbPath + "-wal")
			_ = os.Remove(dbPath + "-shm")
			fmt.Println("Database removed.")
			return nil
		}

		st, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		explicitUser, _ := cmd.Flags().GetString("user")
		name := identity.ResolveName(explicitUser)
		session, err := identity.Establish(ctx, st.UserRepo(), name)
		if err != nil {
			return err
		}

		if !force && !confirm(fmt.Sprintf("This deletes every paper saved by %q.", session.Name)) {
			fmt.Println("Aborted.")
			return nil
		}

		n, err := st.PaperRepo().DeleteByOwner(ctx, session.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d paper(s) for %s.\n", n, session.Name)
		return nil
	},
}

func confirm(warning string) bool {
	fmt.Println(warning)
	fmt.Print("Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line) == "yes"
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete the entire database, all profiles included")
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
