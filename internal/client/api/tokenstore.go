package api

import (
	"errors"
	"os"
	"path/filepath"
)

// tokenFileName is the well-known key under which the access token is
// persisted between runs.
const tokenFileName = "token"

// TokenStore persists the current access token.
type TokenStore interface {
	// Load returns the stored token, or an empty string when none exists.
	Load() (string, error)

	// Save stores the token, replacing any previous value.
	Save(token string) error

	// Clear removes the stored token. Clearing an absent token is not an
	// error.
	Clear() error
}

// FileTokenStore keeps the access token in a file under the client state
// directory.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore constructs a FileTokenStore rooted at dir, creating the
// directory if needed.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileTokenStore{path: filepath.Join(dir, tokenFileName)}, nil
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
