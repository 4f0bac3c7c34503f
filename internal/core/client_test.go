package core

import (
	"context"
	"fmt"

	"github.com/seckatie/paperbase/internal/instapaper"
)

// fakeClient is a scriptable RemoteClient for workflow tests. It counts
// every remote call so tests can assert nothing touched the network.
type fakeClient struct {
	bookmarks []instapaper.Bookmark
	texts     map[int64]string
	failIDs   map[int64]bool

	loginErr error
	listErr  error

	loginCalls int
	listCalls  int
	textCalls  int
	textOrder  []int64
}

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeClient) ListBookmarks(ctx context.Context, folder string, limit int) ([]instapaper.Bookmark, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit < len(f.bookmarks) {
		return f.bookmarks[:limit], nil
	}
	return f.bookmarks, nil
}

func (f *fakeClient) GetText(ctx context.Context, req instapaper.TextRequest) ([]byte, error) {
	f.textCalls++
	f.textOrder = append(f.textOrder, req.BookmarkID)
	if f.failIDs[req.BookmarkID] {
		return nil, fmt.Errorf("remote error for bookmark %d", req.BookmarkID)
	}
	if text, ok := f.texts[req.BookmarkID]; ok {
		return []byte(text), nil
	}
	return []byte("<html><body>default text</body></html>"), nil
}

func (f *fakeClient) remoteCalls() int {
	return f.loginCalls + f.listCalls + f.textCalls
}
