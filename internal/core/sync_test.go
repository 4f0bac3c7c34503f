package core

import (
	"context"
	"errors"
	"testing"

	"github.com/seckatie/paperbase/internal/instapaper"
)

func remoteBookmark(id int64, title string) instapaper.Bookmark {
	return instapaper.Bookmark{
		Type:              "bookmark",
		BookmarkID:        instapaper.Int64(id),
		Title:             title,
		URL:               "https://example.com/a",
		Hash:              "h1",
		ProgressTimestamp: instapaper.Int64(1614852930),
		Time:              instapaper.Int64(1614585600),
		Progress:          instapaper.Float64(0.25),
		Starred:           instapaper.BoolInt(true),
	}
}

// TestRunSync tests the folder sync workflow.
func TestRunSync(t *testing.T) {
	t.Run("upserts remote bookmarks with the folder attached", func(t *testing.T) {
		database := newTestDB(t)
		client := &fakeClient{bookmarks: []instapaper.Bookmark{
			remoteBookmark(1, "One"),
			remoteBookmark(2, "Two"),
		}}

		n, err := RunSync(context.Background(), database, client, Account{}, "archive", 500)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 synced, got %d", n)
		}
		if client.loginCalls != 1 {
			t.Errorf("expected exactly one login, got %d", client.loginCalls)
		}

		b, err := database.GetBookmark(1)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if b.Folder != "archive" {
			t.Errorf("expected folder tag 'archive', got %q", b.Folder)
		}
		if b.ProgressTimestamp != "2021-03-04T10:15:30" {
			t.Errorf("expected ISO progress timestamp, got %q", b.ProgressTimestamp)
		}
		if b.Time != "2021-03-01T08:00:00" {
			t.Errorf("expected ISO time, got %q", b.Time)
		}
		if !b.Starred {
			t.Error("expected starred flag to survive projection")
		}
	})

	t.Run("re-sync updates rather than duplicates", func(t *testing.T) {
		database := newTestDB(t)
		client := &fakeClient{bookmarks: []instapaper.Bookmark{remoteBookmark(7, "Old Title")}}

		if _, err := RunSync(context.Background(), database, client, Account{}, "archive", 500); err != nil {
			t.Fatalf("first sync failed: %v", err)
		}

		client.bookmarks = []instapaper.Bookmark{remoteBookmark(7, "New Title")}
		if _, err := RunSync(context.Background(), database, client, Account{}, "archive", 500); err != nil {
			t.Fatalf("second sync failed: %v", err)
		}

		if n, _ := database.CountBookmarks(); n != 1 {
			t.Fatalf("expected 1 row after re-sync, got %d", n)
		}
		b, _ := database.GetBookmark(7)
		if b.Title != "New Title" {
			t.Errorf("expected updated title, got %q", b.Title)
		}
	})

	t.Run("defaults folder and limit", func(t *testing.T) {
		database := newTestDB(t)
		client := &fakeClient{}

		if _, err := RunSync(context.Background(), database, client, Account{}, "", 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("remote failure is fatal", func(t *testing.T) {
		database := newTestDB(t)
		client := &fakeClient{listErr: errors.New("remote down")}

		if _, err := RunSync(context.Background(), database, client, Account{}, "archive", 500); err == nil {
			t.Fatal("expected error when listing fails, got nil")
		}
	})
}
