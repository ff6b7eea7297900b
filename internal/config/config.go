package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lms-records/internal/lms"
)

const (
	DefaultModuleID  = 17063573
	DefaultInputPath = "input.txt"
	DefaultTokenFile = "refresh-token.txt"

	configPathEnv = "LMS_CONFIG"
)

type Config struct {
	// LMS
	BaseURL      string `yaml:"baseUrl"`
	LoginPageURL string `yaml:"loginPageUrl"`
	ModuleID     int64  `yaml:"moduleId"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	// RateLimit is the max requests per second, 0 disables pacing.
	RateLimit float64 `yaml:"rateLimit"`

	// Files
	InputPath string `yaml:"input"`
	TokenFile string `yaml:"tokenFile"`

	// SFTP token store, used when SFTPHost is set
	SFTPHost                  string `yaml:"sftpHost"`
	SFTPPort                  int    `yaml:"sftpPort"`
	SFTPUser                  string `yaml:"sftpUser"`
	SFTPPass                  string `yaml:"sftpPass"`
	SFTPDir                   string `yaml:"sftpDir"`
	SFTPKnownHosts            string `yaml:"sftpKnownHosts"`
	SFTPInsecureIgnoreHostKey bool   `yaml:"sftpInsecureIgnoreHostKey"`

	LogLevel string `yaml:"logLevel"`
}

func defaults() Config {
	return Config{
		BaseURL:      lms.DefaultBaseURL,
		LoginPageURL: lms.DefaultLoginPageURL,
		ModuleID:     DefaultModuleID,
		InputPath:    DefaultInputPath,
		TokenFile:    DefaultTokenFile,
		SFTPPort:     22,
		SFTPDir:      "/lms-records",
		LogLevel:     "warn",
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// LMS_CONFIG (if any), then environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv(configPathEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.BaseURL = getenv("LMS_BASE_URL", cfg.BaseURL)
	cfg.LoginPageURL = getenv("LMS_LOGIN_PAGE_URL", cfg.LoginPageURL)
	cfg.ModuleID = int64(getenvInt("LMS_MODULE_ID", int(cfg.ModuleID)))
	cfg.Username = getenv("LMS_USERNAME", cfg.Username)
	cfg.Password = getenv("LMS_PASSWORD", cfg.Password)
	cfg.RateLimit = getenvFloat("LMS_RATE_LIMIT", cfg.RateLimit)

	cfg.InputPath = getenv("LMS_INPUT", cfg.InputPath)
	cfg.TokenFile = getenv("LMS_TOKEN_FILE", cfg.TokenFile)

	cfg.SFTPHost = getenv("SFTP_HOST", cfg.SFTPHost)
	cfg.SFTPPort = getenvInt("SFTP_PORT", cfg.SFTPPort)
	cfg.SFTPUser = getenv("SFTP_USER", cfg.SFTPUser)
	cfg.SFTPPass = getenv("SFTP_PASS", cfg.SFTPPass)
	cfg.SFTPDir = getenv("SFTP_DIR", cfg.SFTPDir)
	cfg.SFTPKnownHosts = getenv("SFTP_KNOWN_HOSTS", cfg.SFTPKnownHosts)
	cfg.SFTPInsecureIgnoreHostKey = getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", cfg.SFTPInsecureIgnoreHostKey)

	cfg.LogLevel = getenv("LMS_LOG_LEVEL", cfg.LogLevel)

	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("config: LMS base url is empty")
	}
	if c.ModuleID <= 0 {
		return fmt.Errorf("config: module id must be positive, got %d", c.ModuleID)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: rate limit must not be negative")
	}
	return nil
}

// UseSFTP reports whether the refresh token lives on an SFTP host.
func (c Config) UseSFTP() bool {
	return c.SFTPHost != ""
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(k string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(k)), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}
