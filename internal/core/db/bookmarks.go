package db

import (
	"database/sql"
	"errors"
	"fmt"
)

const bookmarkFields = `bookmark_id, title, description, hash, url,
	progress_timestamp, time, progress, starred, type, private_source, folder`

// UpsertBookmarks writes all rows keyed by bookmark_id in a single
// transaction. Existing rows have every non-key field overwritten; rows
// are never deleted. Emits a BookmarkUpsertedEvent per row on success.
func (db *DB) UpsertBookmarks(bookmarks []Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}

	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bookmarks (` + bookmarkFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(bookmark_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			hash = excluded.hash,
			url = excluded.url,
			progress_timestamp = excluded.progress_timestamp,
			time = excluded.time,
			progress = excluded.progress,
			starred = excluded.starred,
			type = excluded.type,
			private_source = excluded.private_source,
			folder = excluded.folder
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bookmarks {
		if _, err := stmt.Exec(
			b.BookmarkID, b.Title, b.Description, b.Hash, b.URL,
			b.ProgressTimestamp, b.Time, b.Progress, b.Starred,
			b.Type, b.PrivateSource, b.Folder,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert bookmark %d: %w", b.BookmarkID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}

	for _, b := range bookmarks {
		db.emit(BookmarkUpsertedEvent{Bookmark: b})
	}
	return nil
}

func (db *DB) GetBookmark(id int64) (Bookmark, error) {
	row := db.db.QueryRow(`SELECT `+bookmarkFields+` FROM bookmarks WHERE bookmark_id = ?`, id)
	b, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Bookmark{}, fmt.Errorf("bookmark not found: %d", id)
		}
		return Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return b, nil
}

// ListBookmarksMissingText returns every bookmark with no bookmark_text
// row at all, success or failure: the left anti-join is what makes
// re-runs skip everything already processed. Results come back in
// bookmark_id order so batch runs are deterministic.
func (db *DB) ListBookmarksMissingText() ([]Bookmark, error) {
	rows, err := db.db.Query(`
		SELECT b.bookmark_id, b.title, b.description, b.hash, b.url,
			b.progress_timestamp, b.time, b.progress, b.starred,
			b.type, b.private_source, b.folder
		FROM bookmarks b
		LEFT JOIN bookmark_text bt ON bt.bookmark_id = b.bookmark_id
		WHERE bt.bookmark_id IS NULL
		ORDER BY b.bookmark_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks missing text: %w", err)
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (db *DB) CountBookmarks() (int, error) {
	var n int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM bookmarks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(s scanner) (Bookmark, error) {
	var b Bookmark
	err := s.Scan(
		&b.BookmarkID, &b.Title, &b.Description, &b.Hash, &b.URL,
		&b.ProgressTimestamp, &b.Time, &b.Progress, &b.Starred,
		&b.Type, &b.PrivateSource, &b.Folder,
	)
	return b, err
}
