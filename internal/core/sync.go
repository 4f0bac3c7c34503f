package core

import (
	"context"
	"fmt"
	"log"

	"github.com/seckatie/paperbase/internal/core/db"
	"github.com/seckatie/paperbase/internal/instapaper"
)

// RunSync fetches one folder of bookmarks and upserts them into the
// bookmarks table, tagging each row with the folder it came from. One
// request, capped at limit; the API's single-page limit is not paged
// past. Any remote failure is fatal to the command.
func RunSync(ctx context.Context, database *db.DB, client RemoteClient, account Account, folder string, limit int) (int, error) {
	if folder == "" {
		folder = DefaultFolder
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	if err := client.Login(ctx, account.Email, account.Password); err != nil {
		return 0, fmt.Errorf("login: %w", err)
	}

	log.Println("Fetching bookmarks...")
	remote, err := client.ListBookmarks(ctx, folder, limit)
	if err != nil {
		return 0, fmt.Errorf("list bookmarks: %w", err)
	}

	rows := make([]db.Bookmark, 0, len(remote))
	for _, rb := range remote {
		rows = append(rows, bookmarkFromRemote(rb, folder))
	}
	if err := database.UpsertBookmarks(rows); err != nil {
		return 0, err
	}

	log.Printf("Downloaded %d bookmarks from folder %q.", len(rows), folder)
	return len(rows), nil
}

// bookmarkFromRemote projects a remote bookmark onto the local schema.
// The two epoch timestamps become ISO text here; everything else maps
// field for field.
func bookmarkFromRemote(rb instapaper.Bookmark, folder string) db.Bookmark {
	return db.Bookmark{
		BookmarkID:        int64(rb.BookmarkID),
		Title:             rb.Title,
		Description:       rb.Description,
		Hash:              rb.Hash,
		URL:               rb.URL,
		ProgressTimestamp: epochToISO(int64(rb.ProgressTimestamp)),
		Time:              epochToISO(int64(rb.Time)),
		Progress:          float64(rb.Progress),
		Starred:           bool(rb.Starred),
		Type:              rb.Type,
		PrivateSource:     rb.PrivateSource,
		Folder:            folder,
	}
}
