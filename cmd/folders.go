/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// foldersCmd represents the folders command
var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List the account's remote folders",
	Long: `List the folders on the Instapaper account, for picking a --folder
value for the bookmarks command. The built-in folders "unread",
"archive", and "starred" always exist and are not listed here.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFolders(cmd); err != nil {
			log.Fatalf("Folder listing failed: %v", err)
		}
	},
}

func runFolders(cmd *cobra.Command) error {
	creds, err := loadCredentials(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := newClient(creds)
	if err := client.Login(ctx, creds.Email, creds.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	folders, err := client.ListFolders(ctx)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Println("No custom folders on this account.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE")
	for _, f := range folders {
		fmt.Fprintf(tw, "%d\t%s\n", int64(f.FolderID), f.Title)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}
