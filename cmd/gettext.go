/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"context"
	"log"

	"github.com/seckatie/paperbase/internal/core"
	"github.com/seckatie/paperbase/internal/core/db"
	"github.com/spf13/cobra"
)

// getTextCmd represents the get-text command
var getTextCmd = &cobra.Command{
	Use:   "get-text DB_PATH",
	Short: "Download article text for bookmarks that have none stored",
	Long: `Fetch the article text for every bookmark without a bookmark_text row,
one at a time, committing each outcome before moving on. Failures are
recorded per bookmark and never abort the run, so the command can be
re-run after an interruption and will skip everything already done.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGetText(cmd, args[0]); err != nil {
			log.Fatalf("Text download failed: %v", err)
		}
	},
}

func runGetText(cmd *cobra.Command, dbPath string) error {
	creds, err := loadCredentials(cmd)
	if err != nil {
		return err
	}
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return err
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

	if trace {
		database.RegisterEventListener(db.OnTextSavedEvent, func(event db.Event) error {
			ev := event.(db.TextSavedEvent)
			if ev.Failed {
				log.Printf("Recorded permanent failure for bookmark %d", ev.BookmarkID)
			} else {
				log.Printf("Saved %d bytes of text for bookmark %d", ev.Bytes, ev.BookmarkID)
			}
			return nil
		})
	}

	opts := core.BackfillOptions{
		Account: core.Account{Email: creds.Email, Password: creds.Password},
		Trace:   trace,
	}
	res, err := core.RunBackfill(context.Background(), database, newClient(creds), opts)
	if err != nil {
		return err
	}

	log.Printf("Text backfill finished: %d attempted, %d saved, %d failed", res.Attempted, res.Saved, res.Failed)
	return nil
}

func init() {
	rootCmd.AddCommand(getTextCmd)

	getTextCmd.Flags().BoolP("trace", "t", false, "Print per-bookmark tracing")
}
