package instapaper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The Instapaper API is loose about scalar types: ids and timestamps may
// arrive as numbers or strings, booleans as true/false, 0/1, or "1".
// These wrapper types absorb the variation at the decode boundary so the
// rest of the program works with ordinary Go values.

// Int64 unmarshals from a JSON number or numeric string.
type Int64 int64

func (i *Int64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse int64 from %q: %w", s, err)
		}
		*i = Int64(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("parse int64 from %q: %w", n.String(), err)
	}
	*i = Int64(v)
	return nil
}

// Float64 unmarshals from a JSON number or numeric string.
type Float64 float64

func (f *Float64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse float64 from %q: %w", s, err)
		}
		*f = Float64(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("parse float64 from %q: %w", n.String(), err)
	}
	*f = Float64(v)
	return nil
}

// BoolInt unmarshals from a JSON bool, number (0/1), or string ("0"/"1").
type BoolInt bool

func (bi *BoolInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*bi = false
		return nil
	case bytes.Equal(b, []byte("true")):
		*bi = true
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*bi = s == "1" || s == "true"
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		v, err := n.Int64()
		if err != nil {
			return err
		}
		*bi = v != 0
		return nil
	}
}

// Bookmark is one element of a bookmarks/list response.
type Bookmark struct {
	Type              string  `json:"type"`
	BookmarkID        Int64   `json:"bookmark_id"`
	Title             string  `json:"title,omitempty"`
	Description       string  `json:"description,omitempty"`
	Hash              string  `json:"hash,omitempty"`
	URL               string  `json:"url,omitempty"`
	ProgressTimestamp Int64   `json:"progress_timestamp,omitempty"`
	Time              Int64   `json:"time,omitempty"`
	Progress          Float64 `json:"progress,omitempty"`
	Starred           BoolInt `json:"starred,omitempty"`
	PrivateSource     string  `json:"private_source,omitempty"`
}

// User is the account element echoed back by bookmarks/list.
type User struct {
	Type     string `json:"type"`
	UserID   Int64  `json:"user_id"`
	Username string `json:"username"`
}

// Folder is one element of a folders/list response.
type Folder struct {
	Type     string  `json:"type"`
	FolderID Int64   `json:"folder_id"`
	Title    string  `json:"title"`
	Position Float64 `json:"position,omitempty"`
}

// TextRequest identifies the bookmark whose article text is wanted. The
// remote contract takes the bookmark's fields with both timestamps in
// epoch-seconds form; callers convert from the stored ISO text before
// building one.
type TextRequest struct {
	BookmarkID        int64
	Title             string
	Hash              string
	URL               string
	Progress          float64
	ProgressTimestamp int64
	Time              int64
}
