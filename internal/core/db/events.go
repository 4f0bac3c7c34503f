package db

import "log"

// ------------------------------
// Event System
// ------------------------------
//
// The DB emits typed events when bookmark rows are upserted and when a
// text-fetch outcome is saved. The get-text command's trace mode hangs
// its diagnostics off these instead of threading a logger through the
// storage layer.

// Event is the common interface for all database events.
type Event interface {
	Kind() EventKind
}

// EventKind represents the kinds of events the DB can emit.
type EventKind int

const (
	// OnBookmarkUpsertedEvent is emitted for each bookmark row written
	// during a sync.
	OnBookmarkUpsertedEvent EventKind = iota
	// OnTextSavedEvent is emitted when a text-fetch outcome (success or
	// failure marker) is committed.
	OnTextSavedEvent
)

func (k EventKind) String() string {
	switch k {
	case OnBookmarkUpsertedEvent:
		return "bookmark_upserted"
	case OnTextSavedEvent:
		return "text_saved"
	default:
		return "unknown"
	}
}

// BookmarkUpsertedEvent is emitted after a bookmark row is inserted or
// updated by a sync.
type BookmarkUpsertedEvent struct {
	Bookmark Bookmark
}

func (e BookmarkUpsertedEvent) Kind() EventKind { return OnBookmarkUpsertedEvent }

// TextSavedEvent is emitted after a bookmark_text row is committed.
// Failed marks the permanent error rows; Bytes is the stored text length.
type TextSavedEvent struct {
	BookmarkID int64
	Bytes      int
	Failed     bool
}

func (e TextSavedEvent) Kind() EventKind { return OnTextSavedEvent }

// EventListener is a callback that handles events of a specific kind.
type EventListener func(event Event) error

// RegisterEventListener adds a listener for a specific event kind.
// Listeners run synchronously in registration order after the DB
// operation succeeds.
func (db *DB) RegisterEventListener(eventKind EventKind, listener EventListener) {
	if db.eventListeners == nil {
		db.eventListeners = make(map[EventKind][]EventListener)
	}
	db.eventListeners[eventKind] = append(db.eventListeners[eventKind], listener)
}

func (db *DB) emit(event Event) {
	for _, listener := range db.eventListeners[event.Kind()] {
		if err := listener(event); err != nil {
			log.Printf("Event listener error for %s: %v", event.Kind(), err)
		}
	}
}
