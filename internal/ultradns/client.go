package ultradns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"dario.lol/udns/internal/config"
	"dario.lol/udns/internal/constants"
)

const (
	DefaultBaseURL = "https://api.ultradns.com"

	defaultPageLimit = 100
)

func userAgent() string {
	return fmt.Sprintf("udns/%s (%s; %s)", constants.Version, runtime.GOOS, runtime.GOARCH)
}

// Session is an authenticated UltraDNS API client. It is built once at
// startup and read-only afterwards.
type Session struct {
	baseURL   string
	http      *http.Client
	token     string
	tokenOnly bool
}

type Option func(*Session)

func WithBaseURL(u string) Option {
	return func(s *Session) { s.baseURL = strings.TrimSuffix(u, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) { s.http = c }
}

// NewSession authenticates against the provider. A username/password pair
// is exchanged for an access token via the password grant; a bare token is
// used directly and marks the session read-only for mutating commands.
func NewSession(ctx context.Context, creds config.Credentials, opts ...Option) (*Session, error) {
	s := &Session{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	if creds.Username != "" {
		if err := s.login(ctx, creds.Username, creds.Password); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.token = creds.Token
	s.tokenOnly = true
	return s, nil
}

// Connect builds a session from the process configuration.
func Connect() (*Session, error) {
	creds, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewSession(context.Background(), creds)
}

// ConnectMutating builds a session for commands that change provider
// state. Token-only sessions are rejected before any request is made.
func ConnectMutating(opts ...Option) (*Session, error) {
	creds, err := config.Load()
	if err != nil {
		return nil, err
	}
	s, err := NewSession(context.Background(), creds, opts...)
	if err != nil {
		return nil, err
	}
	if s.TokenOnly() {
		return nil, config.ErrTokenReadOnly
	}
	return s, nil
}

// TokenOnly reports whether this session authenticated with a bare token.
func (s *Session) TokenOnly() bool { return s.tokenOnly }

func (s *Session) login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/authorization/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}

	var token struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("decoding token response: %w", err)
	}
	if token.AccessToken == "" {
		return &APIError{Status: resp.StatusCode, Message: "authorization response carried no access token"}
	}
	s.token = token.AccessToken
	return nil
}

func (s *Session) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// The provider occasionally answers a listing call with an
		// error list and a 2xx status.
		if apiErr := errorList(data); apiErr != nil {
			apiErr.Status = resp.StatusCode
			return apiErr
		}
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
