package sftpclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testHost = "test-host"
		testUser = "test-user"
		testPass = "test-pass"
	)

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name:          "No host key policy",
			cfg:           Config{Host: testHost, User: testUser, Pass: testPass},
			errorContains: "SFTP_KNOWN_HOSTS",
		},
		{
			name: "Unreadable known_hosts",
			cfg: Config{
				Host:           testHost,
				User:           testUser,
				Pass:           testPass,
				KnownHostsPath: "/nonexistent/known_hosts",
			},
			errorContains: "sftp: known_hosts",
		},
		{
			name: "Unreachable host",
			cfg: Config{
				Host:                  "127.0.0.1",
				Port:                  1,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Dial(ctx, tc.cfg)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestDialCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Dial(ctx, Config{
		Host:                  "10.255.255.1",
		User:                  "u",
		Pass:                  "p",
		InsecureIgnoreHostKey: true,
	})
	require.Error(t, err)
}
