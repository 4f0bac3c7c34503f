package db

// Bookmark mirrors one remote bookmark in the bookmarks table.
// ProgressTimestamp and Time are stored as ISO-8601 text
// ("2006-01-02T15:04:05", no zone), the human-readable form; the remote
// client wants them back as epoch seconds.
type Bookmark struct {
	BookmarkID        int64
	Title             string
	Description       string
	Hash              string
	URL               string
	ProgressTimestamp string
	Time              string
	Progress          float64
	Starred           bool
	Type              string
	PrivateSource     string
	Folder            string
}

// BookmarkText is the fetched article text for one bookmark, or a
// permanent failure marker (Error true, Text empty). At most one row
// exists per bookmark; a bookmark with a row is never fetched again.
type BookmarkText struct {
	BookmarkID int64
	Text       string
	Error      bool
}

// bookmarkColumns is the canonical bookmarks schema, used to widen
// databases created before a column existed.
var bookmarkColumns = map[string]string{
	"bookmark_id":        "INTEGER",
	"title":              "TEXT",
	"description":        "TEXT",
	"hash":               "TEXT",
	"url":                "TEXT",
	"progress_timestamp": "TEXT",
	"time":               "TEXT",
	"progress":           "REAL",
	"starred":            "INTEGER",
	"type":               "TEXT",
	"private_source":     "TEXT",
	"folder":             "TEXT",
}
