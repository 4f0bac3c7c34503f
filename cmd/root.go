/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/seckatie/paperbase/internal/config"
	"github.com/seckatie/paperbase/internal/core"
	"github.com/seckatie/paperbase/internal/core/db"
	"github.com/seckatie/paperbase/internal/instapaper"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paperbase",
	Short: "Save Instapaper bookmarks and article text to a SQLite database",
	Long: `paperbase exports an Instapaper account into a local SQLite database
for archival and querying.

Typical workflow:

  paperbase auth                        # store API credentials
  paperbase bookmarks instapaper.db     # sync a folder of bookmarks
  paperbase get-text instapaper.db      # backfill article text

The get-text step is incremental: bookmarks that already have a stored
result (text or a recorded failure) are skipped, so it is safe to re-run
after an interruption.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("auth", "a", config.DefaultPath, "Path to the credentials file")
}

// openDB opens the database at path and brings its schema up to date.
func openDB(path string) (*db.DB, error) {
	database, err := db.NewSQLiteDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// loadCredentials reads the credentials file named by --auth. Every
// command except auth must fail here, before any network call, when the
// file is missing or incomplete.
func loadCredentials(cmd *cobra.Command) (config.Credentials, error) {
	path, err := cmd.Flags().GetString("auth")
	if err != nil {
		return config.Credentials{}, err
	}
	creds, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNoCredentials) {
			return config.Credentials{}, fmt.Errorf("cannot find authentication data (%v), please run `paperbase auth`", err)
		}
		return config.Credentials{}, err
	}
	return creds, nil
}

func newClient(creds config.Credentials) *instapaper.Client {
	return instapaper.NewClient(instapaper.DefaultBaseURL, creds.ConsumerID, creds.ConsumerSecret, core.DefaultRequestTimeout)
}
