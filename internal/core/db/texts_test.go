package db

import (
	"strings"
	"testing"
)

// TestInsertBookmarkText tests the insert-once contract.
func TestInsertBookmarkText(t *testing.T) {
	t.Run("stores a success row", func(t *testing.T) {
		db := newTestDB(t)
		if err := db.UpsertBookmarks([]Bookmark{testBookmark(1)}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 1, Text: "<p>body</p>"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := db.GetBookmarkText(1)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Text != "<p>body</p>" {
			t.Errorf("expected stored text, got %q", got.Text)
		}
		if got.Error {
			t.Error("expected error=false on success row")
		}
	})

	t.Run("stores a failure marker", func(t *testing.T) {
		db := newTestDB(t)
		if err := db.UpsertBookmarks([]Bookmark{testBookmark(2)}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 2, Error: true}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := db.GetBookmarkText(2)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !got.Error {
			t.Error("expected error=true on failure row")
		}
		if got.Text != "" {
			t.Errorf("expected empty text on failure row, got %q", got.Text)
		}
	})

	t.Run("second insert for the same bookmark fails", func(t *testing.T) {
		db := newTestDB(t)
		if err := db.UpsertBookmarks([]Bookmark{testBookmark(3)}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 3, Text: "first"}); err != nil {
			t.Fatalf("first insert failed: %v", err)
		}
		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 3, Text: "second"}); err == nil {
			t.Fatal("expected primary key violation on second insert, got nil")
		}

		n, _ := db.CountBookmarkTexts()
		if n != 1 {
			t.Errorf("expected exactly 1 text row, got %d", n)
		}
	})

	t.Run("emits TextSavedEvent", func(t *testing.T) {
		db := newTestDB(t)
		if err := db.UpsertBookmarks([]Bookmark{testBookmark(4)}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		var events []TextSavedEvent
		db.RegisterEventListener(OnTextSavedEvent, func(event Event) error {
			events = append(events, event.(TextSavedEvent))
			return nil
		})

		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 4, Text: "abcd"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].BookmarkID != 4 || events[0].Bytes != 4 || events[0].Failed {
			t.Errorf("unexpected event: %+v", events[0])
		}
	})
}

// TestGetBookmarkText tests missing-row behavior.
func TestGetBookmarkText(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetBookmarkText(404)
	if err == nil {
		t.Fatal("expected error for missing text row, got nil")
	}
	if !strings.Contains(err.Error(), "no stored text") {
		t.Errorf("expected 'no stored text' error, got %v", err)
	}
}
