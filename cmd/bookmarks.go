/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/seckatie/paperbase/internal/core"
	"github.com/spf13/cobra"
)

// bookmarksCmd represents the bookmarks command
var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks DB_PATH",
	Short: "Sync a folder of bookmarks into the database",
	Long: `Fetch up to --limit bookmarks from one remote folder and upsert them
into the bookmarks table, keyed by bookmark_id. Re-syncing overwrites
bookmark fields with the remote state; rows are never deleted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBookmarks(cmd, args[0]); err != nil {
			log.Fatalf("Bookmark sync failed: %v", err)
		}
	},
}

func runBookmarks(cmd *cobra.Command, dbPath string) error {
	creds, err := loadCredentials(cmd)
	if err != nil {
		return err
	}
	folder, err := cmd.Flags().GetString("folder")
	if err != nil {
		return fmt.Errorf("failed to read --folder: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to read --limit: %w", err)
	}

	database, err := openDB(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	account := core.Account{Email: creds.Email, Password: creds.Password}
	_, err = core.RunSync(context.Background(), database, newClient(creds), account, folder, limit)
	return err
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)

	bookmarksCmd.Flags().StringP("folder", "f", core.DefaultFolder, "The folder of bookmarks to save")
	bookmarksCmd.Flags().Int("limit", core.DefaultListLimit, "Maximum number of bookmarks to request")
}
