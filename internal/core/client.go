package core

import (
	"context"

	"github.com/seckatie/paperbase/internal/instapaper"
)

// RemoteClient is the slice of the Instapaper API the sync and backfill
// workflows use. *instapaper.Client satisfies it; tests substitute fakes.
type RemoteClient interface {
	Login(ctx context.Context, email, password string) error
	ListBookmarks(ctx context.Context, folder string, limit int) ([]instapaper.Bookmark, error)
	GetText(ctx context.Context, req instapaper.TextRequest) ([]byte, error)
}

// Account carries the login half of the credentials; the consumer
// key/secret are baked into the client at construction.
type Account struct {
	Email    string
	Password string
}
