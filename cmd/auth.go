/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/seckatie/paperbase/internal/config"
	"github.com/seckatie/paperbase/internal/prompt"
	"github.com/spf13/cobra"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Save API credentials to a JSON file",
	Long: `Interactively capture the Instapaper Full API credentials and write
them to the credentials file (plaintext JSON; keep the file private).

Get a Full API consumer key at https://www.instapaper.com/api.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAuth(cmd); err != nil {
			log.Fatalf("Auth failed: %v", err)
		}
	},
}

func runAuth(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("auth")
	if err != nil {
		return err
	}

	fmt.Println("In Instapaper, get a Full API key following the process at https://www.instapaper.com/api.")

	p := prompt.New(os.Stdin, os.Stdout)
	consumerID, err := p.Line("OAuth Consumer ID: ")
	if err != nil {
		return err
	}
	consumerSecret, err := p.Line("OAuth Consumer Secret: ")
	if err != nil {
		return err
	}
	email, err := p.Line("Instapaper login (email): ")
	if err != nil {
		return err
	}
	password, err := p.Password("Instapaper password: ")
	if err != nil {
		return err
	}

	creds := config.Credentials{
		ConsumerID:     consumerID,
		ConsumerSecret: consumerSecret,
		Email:          email,
		Password:       password,
	}
	if err := config.Save(path, creds); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Your authentication credentials have been saved to %s. You can now import articles by running:\n", path)
	fmt.Println()
	fmt.Println("    $ paperbase bookmarks instapaper.db")
	return nil
}

func init() {
	rootCmd.AddCommand(authCmd)
}
