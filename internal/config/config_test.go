package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms-records/internal/lms"
)

var allEnv = []string{
	"LMS_CONFIG", "LMS_BASE_URL", "LMS_LOGIN_PAGE_URL", "LMS_MODULE_ID",
	"LMS_USERNAME", "LMS_PASSWORD", "LMS_RATE_LIMIT", "LMS_INPUT",
	"LMS_TOKEN_FILE", "SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASS",
	"SFTP_DIR", "SFTP_KNOWN_HOSTS", "SFTP_INSECURE_IGNORE_HOSTKEY", "LMS_LOG_LEVEL",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "")
	assert.Equal(t, "default", getenv("TEST_GETENV", "default"))

	t.Setenv("TEST_GETENV", "test-value")
	assert.Equal(t, "test-value", getenv("TEST_GETENV", "default"))
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("TEST_GETENV_INT", "")
	assert.Equal(t, 42, getenvInt("TEST_GETENV_INT", 42))

	t.Setenv("TEST_GETENV_INT", "100")
	assert.Equal(t, 100, getenvInt("TEST_GETENV_INT", 42))

	t.Setenv("TEST_GETENV_INT", "not-an-int")
	assert.Equal(t, 42, getenvInt("TEST_GETENV_INT", 42))
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("TEST_GETENV_BOOL", "")
	assert.True(t, getenvBool("TEST_GETENV_BOOL", true))

	t.Setenv("TEST_GETENV_BOOL", "true")
	assert.True(t, getenvBool("TEST_GETENV_BOOL", false))

	t.Setenv("TEST_GETENV_BOOL", "false")
	assert.False(t, getenvBool("TEST_GETENV_BOOL", true))

	t.Setenv("TEST_GETENV_BOOL", "not-a-bool")
	assert.True(t, getenvBool("TEST_GETENV_BOOL", true))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, lms.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, int64(DefaultModuleID), cfg.ModuleID)
	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultTokenFile, cfg.TokenFile)
	assert.Equal(t, 22, cfg.SFTPPort)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.UseSFTP())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("LMS_BASE_URL", "https://lms.test/api")
	t.Setenv("LMS_MODULE_ID", "123")
	t.Setenv("LMS_RATE_LIMIT", "2.5")
	t.Setenv("SFTP_HOST", "sftp.test")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://lms.test/api", cfg.BaseURL)
	assert.Equal(t, int64(123), cfg.ModuleID)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 2222, cfg.SFTPPort)
	assert.True(t, cfg.SFTPInsecureIgnoreHostKey)
	assert.True(t, cfg.UseSFTP())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lms.yaml")
	content := "moduleId: 555\ninput: lessons.txt\nsftpDir: /shared\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("LMS_CONFIG", path)
	t.Setenv("LMS_INPUT", "override.txt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(555), cfg.ModuleID)
	assert.Equal(t, "override.txt", cfg.InputPath)
	assert.Equal(t, "/shared", cfg.SFTPDir)
	assert.Equal(t, lms.DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "lms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("moduleId: [unclosed"), 0o644))
	t.Setenv("LMS_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	require.NoError(t, cfg.Validate())

	cfg.ModuleID = 0
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.RateLimit = -1
	assert.Error(t, cfg.Validate())
}
