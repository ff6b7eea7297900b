// Package session turns the persisted refresh token into a bearer access token,
// saving the rotated refresh token after every successful exchange.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"lms-records/internal/lms"
	"lms-records/internal/tokenstore"
)

// ErrMissingCredential means there is no stored refresh token; the user has to
// log in first.
var ErrMissingCredential = errors.New("no stored refresh token, log in first")

// Authenticator is the part of the LMS client the session needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*lms.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*lms.TokenResponse, error)
}

type Manager struct {
	auth  Authenticator
	store tokenstore.Store
	log   *zap.Logger
}

func NewManager(auth Authenticator, store tokenstore.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{auth: auth, store: store, log: log}
}

// Login authenticates with username and password and stores the issued
// refresh token.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	res, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, res.RefreshToken); err != nil {
		return "", fmt.Errorf("save refresh token: %w", err)
	}
	m.log.Info("logged in", zap.String("user", username))
	return res.RefreshToken, nil
}

// Refresh exchanges refreshToken for an access token. The LMS issues a new
// refresh token each time; it replaces the stored one before returning.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (string, error) {
	res, err := m.auth.Refresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, res.RefreshToken); err != nil {
		return "", fmt.Errorf("save refresh token: %w", err)
	}
	m.log.Debug("refresh token rotated")
	return res.AccessToken, nil
}

// LoadRefreshToken reads the stored refresh token.
func (m *Manager) LoadRefreshToken(ctx context.Context) (string, error) {
	token, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrMissingCredential, err)
		}
		return "", err
	}
	return token, nil
}

// AccessToken loads the stored refresh token and refreshes it.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	refreshToken, err := m.LoadRefreshToken(ctx)
	if err != nil {
		return "", err
	}
	return m.Refresh(ctx, refreshToken)
}
