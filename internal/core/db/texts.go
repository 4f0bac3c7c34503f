package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// InsertBookmarkText records the outcome of one text fetch. It is a
// plain insert: each bookmark gets exactly one row for its lifetime, and
// a second insert for the same bookmark_id fails on the primary key.
// Emits a TextSavedEvent on success.
func (db *DB) InsertBookmarkText(bt BookmarkText) error {
	_, err := db.db.Exec(`
		INSERT INTO bookmark_text (bookmark_id, text, error)
		VALUES (?, ?, ?)
	`, bt.BookmarkID, bt.Text, bt.Error)
	if err != nil {
		return fmt.Errorf("failed to insert text for bookmark %d: %w", bt.BookmarkID, err)
	}

	db.emit(TextSavedEvent{
		BookmarkID: bt.BookmarkID,
		Bytes:      len(bt.Text),
		Failed:     bt.Error,
	})
	return nil
}

func (db *DB) GetBookmarkText(id int64) (BookmarkText, error) {
	var bt BookmarkText
	err := db.db.QueryRow(`
		SELECT bookmark_id, text, error FROM bookmark_text WHERE bookmark_id = ?
	`, id).Scan(&bt.BookmarkID, &bt.Text, &bt.Error)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BookmarkText{}, fmt.Errorf("no stored text for bookmark %d", id)
		}
		return BookmarkText{}, fmt.Errorf("failed to get bookmark text: %w", err)
	}
	return bt, nil
}

func (db *DB) CountBookmarkTexts() (int, error) {
	var n int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM bookmark_text`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count bookmark texts: %w", err)
	}
	return n, nil
}
