package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/time/rate"

	"lms-records/internal/config"
	"lms-records/internal/lms"
	"lms-records/internal/session"
	"lms-records/internal/sftpclient"
	"lms-records/internal/sync"
	"lms-records/internal/tokenstore"
)

func newClient(cfg config.Config) *lms.Client {
	c := lms.New(cfg.BaseURL)
	c.LoginPageURL = cfg.LoginPageURL
	c.Log = logger
	if cfg.RateLimit > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

func newStore(cfg config.Config) tokenstore.Store {
	if cfg.UseSFTP() {
		return tokenstore.SFTPStore{
			Config: sftpclient.Config{
				Host:                  cfg.SFTPHost,
				Port:                  cfg.SFTPPort,
				User:                  cfg.SFTPUser,
				Pass:                  cfg.SFTPPass,
				RemoteDir:             cfg.SFTPDir,
				KnownHostsPath:        cfg.SFTPKnownHosts,
				InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
			},
			FileName: tokenstore.DefaultFileName,
		}
	}
	return tokenstore.FileStore{Path: cfg.TokenFile}
}

func newSession(cfg config.Config, client *lms.Client) *session.Manager {
	return session.NewManager(client, newStore(cfg), logger)
}

func newSyncer(cfg config.Config) *sync.Syncer {
	client := newClient(cfg)
	return &sync.Syncer{
		Tokens:   newSession(cfg, client),
		Connect:  func(token string) sync.Materials { return client.WithAccessToken(token) },
		ModuleID: cfg.ModuleID,
		Out:      os.Stdout,
		Quiet:    quiet,
		Log:      logger,
	}
}

// parseGroupID accepts the first number of the group's admin panel URL.
func parseGroupID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid group id %q: expected a non-negative number", s)
	}
	return id, nil
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(b), nil
}
