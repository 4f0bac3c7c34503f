/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/seckatie/paperbase/internal/core"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show DB_PATH BOOKMARK_ID",
	Short: "Print a stored article as plain text",
	Long: `Read one bookmark's stored article text from the database, strip the
HTML, and print the title and body to stdout. Works entirely offline;
run get-text first to populate the text table.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShow(args[0], args[1]); err != nil {
			log.Fatalf("Show failed: %v", err)
		}
	},
}

func runShow(dbPath, idArg string) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bookmark id %q: %w", idArg, err)
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

	bt, err := database.GetBookmarkText(id)
	if err != nil {
		return err
	}
	if bt.Error {
		return fmt.Errorf("the text fetch for bookmark %d failed permanently; delete its bookmark_text row and re-run get-text to retry", id)
	}

	article, err := core.ExtractArticle(bt.Text)
	if err != nil {
		return err
	}
	if article.Title != "" {
		fmt.Println(article.Title)
		fmt.Println()
	}
	fmt.Println(article.Text)
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
