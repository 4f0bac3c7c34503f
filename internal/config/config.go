// Package config stores the Instapaper API credentials in a local JSON
// file. The file is plaintext by design; it holds the account password
// because the API's xAuth flow needs it on every login.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// DefaultPath is where credentials live unless --auth overrides it.
const DefaultPath = "auth.json"

// ErrNoCredentials indicates the credentials file is missing or does not
// hold a complete, valid set of credentials.
var ErrNoCredentials = errors.New("no stored credentials")

var validate = validator.New()

// Credentials is the full set needed to use the Instapaper Full API.
type Credentials struct {
	ConsumerID     string `json:"instapaper_consumer_id" validate:"required"`
	ConsumerSecret string `json:"instapaper_consumer_secret" validate:"required"`
	Email          string `json:"instapaper_email" validate:"required,email"`
	Password       string `json:"instapaper_password" validate:"required"`
}

// Load reads and validates credentials from path. A missing file or an
// incomplete credential set returns an error wrapping ErrNoCredentials so
// commands can tell the user to run auth before anything touches the
// network.
func Load(path string) (Credentials, error) {
	var c Credentials
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, fmt.Errorf("%w at %s", ErrNoCredentials, path)
		}
		return Credentials{}, fmt.Errorf("read credentials %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	if err := validate.Struct(c); err != nil {
		return Credentials{}, fmt.Errorf("%w at %s: %v", ErrNoCredentials, path, err)
	}
	return c, nil
}

// Save writes credentials to path, merging onto any existing file so keys
// other programs may have added alongside ours survive. The file is
// written 0600 via a temp file and rename.
func Save(path string, c Credentials) error {
	if path == "" {
		return errors.New("credentials path is empty")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("incomplete credentials: %w", err)
	}

	merged := map[string]any{}
	if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, &merged); err != nil {
			return fmt.Errorf("parse existing credentials %s: %w", path, err)
		}
	}
	merged["instapaper_consumer_id"] = c.ConsumerID
	merged["instapaper_consumer_secret"] = c.ConsumerSecret
	merged["instapaper_email"] = c.Email
	merged["instapaper_password"] = c.Password

	b, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
