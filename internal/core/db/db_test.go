package db

import (
	"os"
	"testing"
)

// newTestDB creates a migrated in-memory SQLite database for testing.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testBookmark(id int64) Bookmark {
	return Bookmark{
		BookmarkID:        id,
		Title:             "Example Article",
		Description:       "A description",
		Hash:              "abc123",
		URL:               "https://example.com/article",
		ProgressTimestamp: "2021-03-04T10:15:30",
		Time:              "2021-03-01T08:00:00",
		Progress:          0.5,
		Starred:           true,
		Type:              "bookmark",
		PrivateSource:     "",
		Folder:            "archive",
	}
}

// TestNewSQLiteDB tests database creation.
func TestNewSQLiteDB(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewSQLiteDB(":memory:")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		if db.db == nil {
			t.Error("expected db.db to be non-nil")
		}
		if db.eventListeners == nil {
			t.Error("expected eventListeners to be initialized")
		}
	})

	t.Run("file database", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "paperbase-test-*.db")
		if err != nil {
			t.Fatalf("failed to create temp file: %v", err)
		}
		tmpFile.Close()
		defer os.Remove(tmpFile.Name())

		db, err := NewSQLiteDB(tmpFile.Name())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()
	})
}

// TestMigrate tests the migration system.
func TestMigrate(t *testing.T) {
	t.Run("creates both tables", func(t *testing.T) {
		db := newTestDB(t)

		if err := db.UpsertBookmarks([]Bookmark{testBookmark(1)}); err != nil {
			t.Fatalf("failed to insert into bookmarks: %v", err)
		}
		if err := db.InsertBookmarkText(BookmarkText{BookmarkID: 1, Text: "<p>hi</p>"}); err != nil {
			t.Fatalf("failed to insert into bookmark_text: %v", err)
		}
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		db := newTestDB(t)

		if err := db.Migrate(); err != nil {
			t.Fatalf("second migration failed: %v", err)
		}

		var count int
		if err := db.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}
		if count == 0 {
			t.Error("expected migrations to be recorded")
		}
	})
}

// TestEnsureColumns tests schema widening.
func TestEnsureColumns(t *testing.T) {
	t.Run("adds missing columns", func(t *testing.T) {
		db := newTestDB(t)

		cols := map[string]string{"bookmark_id": "INTEGER", "tags": "TEXT"}
		if err := db.EnsureColumns("bookmarks", cols); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := db.db.Exec(`UPDATE bookmarks SET tags = 'a,b'`); err != nil {
			t.Errorf("expected tags column to exist, got %v", err)
		}
	})

	t.Run("is a no-op when all columns exist", func(t *testing.T) {
		db := newTestDB(t)

		if err := db.EnsureColumns("bookmarks", bookmarkColumns); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := db.EnsureColumns("bookmarks", bookmarkColumns); err != nil {
			t.Fatalf("expected no error on repeat, got %v", err)
		}
	})
}

// TestClose tests database close functionality.
func TestClose(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
