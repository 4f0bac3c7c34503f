package core

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/seckatie/paperbase/internal/core/db"
	"github.com/seckatie/paperbase/internal/instapaper"
)

// BackfillOptions configures a text backfill run.
type BackfillOptions struct {
	Account Account
	// Trace adds per-bookmark diagnostics: the id/title being queried,
	// the byte count received, and a completion line.
	Trace bool
}

// BackfillResult reports the outcome of a backfill run.
type BackfillResult struct {
	Attempted int
	Saved     int
	Failed    int
}

// RunBackfill fetches article text for every bookmark that has no
// bookmark_text row yet.
//
// The working set is computed once, up front; bookmarks synced while the
// run is in flight wait for the next run. Items are processed strictly
// one at a time, in query order. Every outcome (fetched text or a
// permanent error marker) is committed before the next item starts, so
// an interrupted run loses at most the in-flight item and a re-run picks
// up exactly where this one stopped.
//
// A per-item failure (malformed stored timestamp, network error, remote
// error payload, non-UTF-8 response) is logged with the item's position,
// recorded as an error row, and never aborts the batch. Only login,
// working-set query, and insert failures are fatal.
func RunBackfill(ctx context.Context, database *db.DB, client RemoteClient, opts BackfillOptions) (BackfillResult, error) {
	var res BackfillResult

	pending, err := database.ListBookmarksMissingText()
	if err != nil {
		return res, err
	}
	if len(pending) == 0 {
		log.Println("No bookmarks need text.")
		return res, nil
	}

	if err := client.Login(ctx, opts.Account.Email, opts.Account.Password); err != nil {
		return res, fmt.Errorf("login: %w", err)
	}

	if opts.Trace {
		log.Printf("Iterating through %d bookmarks without text or errors.", len(pending))
	}

	for i, b := range pending {
		res.Attempted++
		position := fmt.Sprintf("%d of %d", i+1, len(pending))
		log.Printf("Pulling text for bookmark %s", position)

		text, err := fetchText(ctx, client, b, opts.Trace)
		if err != nil {
			res.Failed++
			log.Printf("Failed to fetch text for bookmark %s (id=%d): %v", position, b.BookmarkID, err)
			if insErr := database.InsertBookmarkText(db.BookmarkText{BookmarkID: b.BookmarkID, Error: true}); insErr != nil {
				return res, fmt.Errorf("record failure for bookmark %d: %w", b.BookmarkID, insErr)
			}
			continue
		}

		if err := database.InsertBookmarkText(db.BookmarkText{BookmarkID: b.BookmarkID, Text: text}); err != nil {
			return res, fmt.Errorf("save text for bookmark %d: %w", b.BookmarkID, err)
		}
		res.Saved++
		if opts.Trace {
			log.Printf("For %s received text of %d bytes", position, len(text))
		}
	}

	if opts.Trace {
		log.Println("Finished downloading text.")
	}
	return res, nil
}

// fetchText converts one stored row into the remote call's form and
// retrieves its article text. The stored ISO timestamps are re-parsed to
// epoch seconds here; a value that no longer parses is this item's
// failure, not the run's.
func fetchText(ctx context.Context, client RemoteClient, b db.Bookmark, trace bool) (string, error) {
	progressTS, err := parseISOToEpoch(b.ProgressTimestamp)
	if err != nil {
		return "", fmt.Errorf("progress_timestamp: %w", err)
	}
	readTS, err := parseISOToEpoch(b.Time)
	if err != nil {
		return "", fmt.Errorf("time: %w", err)
	}

	if trace {
		log.Printf("Querying for bookmark_id: %d title: %s", b.BookmarkID, b.Title)
	}

	payload, err := client.GetText(ctx, instapaper.TextRequest{
		BookmarkID:        b.BookmarkID,
		Title:             b.Title,
		Hash:              b.Hash,
		URL:               b.URL,
		Progress:          b.Progress,
		ProgressTimestamp: progressTS,
		Time:              readTS,
	})
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("response for bookmark %d is not valid UTF-8", b.BookmarkID)
	}
	return string(payload), nil
}
