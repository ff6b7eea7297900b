// Package lms is a client for the admin API of the LMS: authentication and the
// "additional materials" of a training module.
package lms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"lms-records/internal/domain"
	"lms-records/internal/httpx"
)

const (
	DefaultBaseURL      = "https://api.admin.edu.goiteens.com/api/v1"
	DefaultLoginPageURL = "https://admin.edu.goiteens.com/account/login"

	contentTypeJSON = "application/json"
	materialsPath   = "/training-module/additional-material"
)

type Client struct {
	BaseURL      string
	LoginPageURL string
	HTTP         *http.Client

	// Limiter, when set, paces consecutive requests. It never retries.
	Limiter *rate.Limiter
	Log     *zap.Logger

	accessToken string
}

func New(baseURL string) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		LoginPageURL: DefaultLoginPageURL,
		HTTP: &http.Client{
			Timeout:   2 * time.Minute,
			Transport: tr,
		},
		Log: zap.NewNop(),
	}
}

// WithAccessToken returns a copy of the client whose requests carry
// "Authorization: Bearer <token>".
func (c *Client) WithAccessToken(token string) *Client {
	cp := *c
	cp.accessToken = token
	cp.HTTP = &http.Client{
		Timeout: c.HTTP.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.HTTP.Transport,
		},
	}
	return &cp
}

func (c *Client) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	const op = "login"
	body := LoginRequest{Username: username, Password: password, URL: c.LoginPageURL}

	var out TokenResponse
	if err := c.call(ctx, op, http.MethodPost, c.BaseURL+"/auth/login", body, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &RejectedError{Op: op, Message: out.Error}
	}
	if out.RefreshToken == "" {
		return nil, fmt.Errorf("lms: %s: missing refresh token: %w", op, ErrInvalidResponse)
	}
	return &out, nil
}

// Refresh trades a refresh token for a new token pair. The LMS rotates the
// refresh token on every call.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	const op = "refresh"
	cookie := &http.Cookie{Name: "refreshToken", Value: refreshToken}

	var out TokenResponse
	if err := c.call(ctx, op, http.MethodPost, c.BaseURL+"/auth/refresh", nil, cookie, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &RejectedError{Op: op, Message: out.Error}
	}
	if out.RefreshToken == "" || out.AccessToken == "" {
		return nil, fmt.Errorf("lms: %s: missing token: %w", op, ErrInvalidResponse)
	}
	return &out, nil
}

// CreateMaterial adds one material. A rejection is returned as *RejectedError.
func (c *Client) CreateMaterial(ctx context.Context, req CreateMaterialRequest) error {
	const op = "create material"
	if err := c.requireToken(op); err != nil {
		return err
	}

	var out GenericResponse
	if err := c.call(ctx, op, http.MethodPost, c.BaseURL+materialsPath+"/create", req, nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return &RejectedError{Op: op, Message: out.Error}
	}
	return nil
}

// ListMaterials returns the materials of a group in the order the LMS lists them.
func (c *Client) ListMaterials(ctx context.Context, moduleID, groupID int64) ([]domain.RemoteMaterial, error) {
	const op = "list materials"
	if err := c.requireToken(op); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.BaseURL + materialsPath + "/list")
	if err != nil {
		return nil, fmt.Errorf("lms: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("moduleId", strconv.FormatInt(moduleID, 10))
	q.Set("groupId", strconv.FormatInt(groupID, 10))
	u.RawQuery = q.Encode()

	var out ListMaterialsResponse
	if err := c.call(ctx, op, http.MethodGet, u.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &RejectedError{Op: op, Message: out.Error}
	}
	if out.Group == nil {
		return nil, fmt.Errorf("lms: %s: missing group: %w", op, ErrInvalidResponse)
	}
	return out.Group, nil
}

// DeleteMaterial removes one material by id.
func (c *Client) DeleteMaterial(ctx context.Context, materialID int64) error {
	const op = "delete material"
	if err := c.requireToken(op); err != nil {
		return err
	}

	var out GenericResponse
	if err := c.call(ctx, op, http.MethodPost, c.BaseURL+materialsPath+"/delete", DeleteMaterialRequest{MaterialID: materialID}, nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return &RejectedError{Op: op, Message: out.Error}
	}
	return nil
}

func (c *Client) requireToken(op string) error {
	if c.accessToken == "" {
		return fmt.Errorf("lms: %s: missing access token (call WithAccessToken first)", op)
	}
	return nil
}

// call performs one request and decodes the JSON answer into out. A non-2xx
// answer that still carries a {success:false} envelope is reported as a
// rejection with the service's own message.
func (c *Client) call(ctx context.Context, op, method, target string, in any, cookie *http.Cookie, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}

	start := time.Now()
	err := httpx.DoJSON(ctx, c.HTTP, func(ctx context.Context) (*http.Request, error) {
		var rd io.Reader
		if in != nil {
			b, err := httpx.JSONBody(in)
			if err != nil {
				return nil, err
			}
			rd = b
		}
		r, err := http.NewRequestWithContext(ctx, method, target, rd)
		if err != nil {
			return nil, err
		}
		if in != nil {
			r.Header.Set("Content-Type", contentTypeJSON)
		}
		r.Header.Set("Accept", contentTypeJSON)
		if cookie != nil {
			r.AddCookie(cookie)
		}
		return r, nil
	}, out)
	c.logger().Debug("lms request",
		zap.String("op", op),
		zap.String("method", method),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)

	if err != nil {
		var herr *httpx.HTTPError
		if errors.As(err, &herr) {
			var env struct {
				Success *bool  `json:"success"`
				Error   string `json:"error"`
			}
			if httpx.Decode(herr.Body, &env) == nil && env.Success != nil && !*env.Success {
				return &RejectedError{Op: op, Message: env.Error}
			}
		}
		return &TransportError{Op: op, Err: err}
	}
	return nil
}
