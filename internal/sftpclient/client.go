package sftpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	KnownHostsPath        string
	InsecureIgnoreHostKey bool
}

// Client is an open SFTP session. Close releases both the SFTP and SSH layers.
type Client struct {
	ssh  *ssh.Client
	sftp *sftp.Client
	dir  string
}

func (cfg Config) validate() error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if !cfg.InsecureIgnoreHostKey && cfg.KnownHostsPath == "" {
		return fmt.Errorf("sftp: set SFTP_KNOWN_HOSTS or SFTP_INSECURE_IGNORE_HOSTKEY")
	}
	return nil
}

func (cfg Config) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	cb, err := knownhosts.New(cfg.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("sftp: known_hosts: %w", err)
	}
	return cb, nil
}

// Dial opens an SSH connection with password auth and starts an SFTP session.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}

	cb, err := cfg.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	// ssh.Dial has no context variant
	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		// the dial may still succeed after we stop waiting
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("sftp: new client: %w", err)
	}

	return &Client{ssh: sshClient, sftp: sftpCli, dir: cfg.RemoteDir}, nil
}

// NewClient wraps an already established SFTP session rooted at dir.
// Close then only closes the SFTP layer.
func NewClient(sc *sftp.Client, dir string) *Client {
	if dir == "" {
		dir = "/"
	}
	return &Client{sftp: sc, dir: dir}
}

func (c *Client) Close() error {
	err := c.sftp.Close()
	if c.ssh == nil {
		return err
	}
	if cerr := c.ssh.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadFile reads name from the remote directory. A missing file is reported
// with an error matching fs.ErrNotExist.
func (c *Client) ReadFile(name string) ([]byte, error) {
	remotePath := path.Join(c.dir, name)
	f, err := c.sftp.Open(remotePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("sftp: open %s: %w", remotePath, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("sftp: open %s: %w", remotePath, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("sftp: read %s: %w", remotePath, err)
	}
	return b, nil
}

// WriteFile replaces name in the remote directory, creating the directory
// when needed.
func (c *Client) WriteFile(name string, data []byte) error {
	if err := c.sftp.MkdirAll(c.dir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", c.dir, err)
	}

	remotePath := path.Join(c.dir, name)
	dst, err := c.sftp.OpenFile(remotePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}

	if _, err := dst.Write(data); err != nil {
		dst.Close()
		return fmt.Errorf("sftp: write %s: %w", remotePath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close %s: %w", remotePath, err)
	}
	return nil
}
