// Public domain.

package mpc

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultURL is the MPC web service search endpoint.  Object lookups and
// constraint searches are both POSTed here.
const DefaultURL = "http://mpcdb1.cfa.harvard.edu/ws/search"

// Public service account of the MPC web service.
const (
	DefaultUsername = "mpc_ws"
	DefaultPassword = "mpc!!ws"
)

// Config holds the settings a hosting application may override.
type Config struct {
	URL string
	// Timeout limits establishing the connection.
	Timeout time.Duration
	// RetrievalTimeout limits the whole exchange, including reading the
	// response body.
	RetrievalTimeout time.Duration
	Username         string
	Password         string
}

// DefaultConfig returns the service defaults: DefaultURL, a 60 second
// connect timeout, a 120 second retrieval timeout and the public
// service account.
func DefaultConfig() Config {
	return Config{
		URL:              DefaultURL,
		Timeout:          60 * time.Second,
		RetrievalTimeout: 120 * time.Second,
		Username:         DefaultUsername,
		Password:         DefaultPassword,
	}
}

// Client queries the MPC web service.
//
// Calls are synchronous.  Login must not be called concurrently with
// queries; otherwise a Client may be shared.
type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from Config.  Timeouts
// in Config are then not applied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for warnings.  The default discards them,
// including the "no results" warning of an empty query.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for cfg.  Zero fields in cfg take their values
// from DefaultConfig.
func New(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.URL == "" {
		cfg.URL = def.URL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetrievalTimeout <= 0 {
		cfg.RetrievalTimeout = def.RetrievalTimeout
	}
	if cfg.Username == "" && cfg.Password == "" {
		cfg.Username, cfg.Password = def.Username, def.Password
	}
	c := &Client{
		url:      cfg.URL,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: cfg.RetrievalTimeout,
			Transport: &http.Transport{
				Proxy:       http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{Timeout: cfg.Timeout}).DialContext,
			},
		},
		log: zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Login sets the credentials sent with every following request.
func (c *Client) Login(username, password string) {
	c.username = username
	c.password = password
}

// Response is an unparsed service response.  The body has been read in
// full and the connection released.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// statusBodyMax limits the body excerpt carried by a StatusError.
const statusBodyMax = 512

// send POSTs p, form encoded, to the service.  Errors from the HTTP
// client are returned as they are; nothing is retried.
func (c *Client) send(ctx context.Context, p Payload) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url,
		strings.NewReader(p.Values().Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.username, c.password)

	r, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("mpc response",
		zap.String("url", c.url),
		zap.Int("status", r.StatusCode),
		zap.Int("bytes", len(b)))
	if r.StatusCode < 200 || r.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(b))
		if len(excerpt) > statusBodyMax {
			n := statusBodyMax
			for n > 0 && !utf8.RuneStart(excerpt[n]) {
				n--
			}
			excerpt = excerpt[:n]
		}
		return nil, &StatusError{
			StatusCode: r.StatusCode,
			Status:     r.Status,
			Body:       excerpt,
		}
	}
	return &Response{StatusCode: r.StatusCode, Header: r.Header, Body: b}, nil
}
