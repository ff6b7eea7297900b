package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms-records/internal/sftpclient"
)

func TestFileStore_MissingFile(t *testing.T) {
	s := FileStore{Path: filepath.Join(t.TempDir(), DefaultFileName)}

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := FileStore{Path: filepath.Join(t.TempDir(), "nested", DefaultFileName)}

	require.NoError(t, s.Save(ctx, "first-token-value"))
	require.NoError(t, s.Save(ctx, "second"))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	info, err := os.Stat(s.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("  token\n"), 0o600))

	got, err := FileStore{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token", got)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := FileStore{Path: path}.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSFTPStore_InvalidConfig(t *testing.T) {
	s := SFTPStore{Config: sftpclient.Config{}}

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "SFTP_HOST")

	err = s.Save(context.Background(), "token")
	require.Error(t, err)
}

func TestSFTPStore_DefaultFileName(t *testing.T) {
	assert.Equal(t, DefaultFileName, SFTPStore{}.fileName())
	assert.Equal(t, "shared.txt", SFTPStore{FileName: "shared.txt"}.fileName())
}
