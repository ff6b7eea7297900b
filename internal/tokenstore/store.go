// Package tokenstore keeps the single persisted refresh token.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lms-records/internal/sftpclient"
)

// ErrNotFound is returned by Load when no token has been saved yet.
var ErrNotFound = errors.New("refresh token not found")

// Store holds at most one refresh token. Save overwrites the previous value.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

// DefaultFileName is where the token lives when nothing else is configured.
const DefaultFileName = "refresh-token.txt"

// FileStore keeps the token in a local file.
type FileStore struct {
	Path string
}

func (s FileStore) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", s.Path, ErrNotFound)
		}
		return "", fmt.Errorf("tokenstore: read %s: %w", s.Path, err)
	}
	return parseToken(b, s.Path)
}

func (s FileStore) Save(_ context.Context, token string) error {
	if dir := filepath.Dir(s.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("tokenstore: create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: write %s: %w", s.Path, err)
	}
	return nil
}

// SFTPStore keeps the token on an SFTP host so that several operators share
// the same rotated credential. Every call opens its own session.
type SFTPStore struct {
	Config   sftpclient.Config
	FileName string

	// dial defaults to sftpclient.Dial
	dial func(ctx context.Context, cfg sftpclient.Config) (*sftpclient.Client, error)
}

func (s SFTPStore) open(ctx context.Context) (*sftpclient.Client, error) {
	if s.dial != nil {
		return s.dial(ctx, s.Config)
	}
	return sftpclient.Dial(ctx, s.Config)
}

func (s SFTPStore) fileName() string {
	if s.FileName == "" {
		return DefaultFileName
	}
	return s.FileName
}

func (s SFTPStore) Load(ctx context.Context) (string, error) {
	c, err := s.open(ctx)
	if err != nil {
		return "", fmt.Errorf("tokenstore: %w", err)
	}
	defer c.Close()

	b, err := c.ReadFile(s.fileName())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("sftp %s: %w", s.fileName(), ErrNotFound)
		}
		return "", fmt.Errorf("tokenstore: %w", err)
	}
	return parseToken(b, s.fileName())
}

func (s SFTPStore) Save(ctx context.Context, token string) error {
	c, err := s.open(ctx)
	if err != nil {
		return fmt.Errorf("tokenstore: %w", err)
	}
	defer c.Close()

	if err := c.WriteFile(s.fileName(), []byte(token)); err != nil {
		return fmt.Errorf("tokenstore: %w", err)
	}
	return nil
}

// An empty slot counts as missing. Surrounding whitespace from hand edits is
// ignored.
func parseToken(b []byte, where string) (string, error) {
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("%s is empty: %w", where, ErrNotFound)
	}
	return token, nil
}
