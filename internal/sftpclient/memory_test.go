package sftpclient

import (
	"io"
	"io/fs"
	"testing"

	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMemoryClient serves an in-memory SFTP filesystem over pipes.
func newMemoryClient(t *testing.T, dir string) *Client {
	t.Helper()

	toServerR, toServerW := io.Pipe()
	toClientR, toClientW := io.Pipe()

	server := sftp.NewRequestServer(struct {
		io.Reader
		io.WriteCloser
	}{toServerR, toClientW}, sftp.InMemHandler())
	go func() { _ = server.Serve() }()

	sc, err := sftp.NewClientPipe(toClientR, toServerW)
	require.NoError(t, err)

	c := NewClient(sc, dir)
	t.Cleanup(func() {
		_ = c.Close()
		_ = server.Close()
	})
	return c
}

func TestReadFile_Missing(t *testing.T) {
	c := newMemoryClient(t, "/lms-records")

	_, err := c.ReadFile("refresh-token.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteFile_CreatesDirAndTruncates(t *testing.T) {
	c := newMemoryClient(t, "/lms-records")

	require.NoError(t, c.WriteFile("refresh-token.txt", []byte("a-much-longer-first-token")))

	info, err := c.sftp.Stat("/lms-records")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, c.WriteFile("refresh-token.txt", []byte("short")))

	got, err := c.ReadFile("refresh-token.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestNewClient_DefaultDir(t *testing.T) {
	c := newMemoryClient(t, "")
	assert.Equal(t, "/", c.dir)

	require.NoError(t, c.WriteFile("token.txt", []byte("x")))
	got, err := c.ReadFile("token.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}
