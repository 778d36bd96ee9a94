// Package mihomo fetches and decodes parsed Honkai: Star Rail player profiles from the
// api.mihomo.me service.
package mihomo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
)

const (
	DefaultBaseURL   = "https://api.mihomo.me/"
	DefaultUserAgent = "srinfo"

	profilePath = "sr_info_parsed/"
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client performs profile lookups. It holds no mutable state, so one Client may be shared by
// any number of goroutines.
type Client struct {
	httpClient HTTPDoer
	baseURL    string
	userAgent  string
}

type Option func(*Client)

// WithHTTPClient replaces the transport. The client is used as is, no timeout is imposed.
func WithHTTPClient(httpClient HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at another host, mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func New(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ProfileURL builds the request target for a uid, e.g.
// https://api.mihomo.me/sr_info_parsed/800000001?lang=en.
func ProfileURL(baseURL string, uid uint32, lang Language) (string, error) {
	if !lang.Valid() {
		return "", &LanguageError{Value: lang.String()}
	}

	base, errBase := url.Parse(baseURL)
	if errBase != nil {
		return "", errors.Join(errBase, ErrRequest)
	}

	target := base.JoinPath(profilePath, strconv.FormatUint(uint64(uid), 10))
	target.RawQuery = url.Values{"lang": {lang.Code()}}.Encode()

	return target.String(), nil
}

// FetchProfile fetches a profile using a client with default settings.
func FetchProfile(ctx context.Context, uid uint32, lang Language) (*Profile, error) {
	return New().FetchProfile(ctx, uid, lang)
}

// FetchProfile performs a single GET for the uid and decodes the response. Errors always match
// ErrFetchProfile and one of ErrRequest, ErrResponseStatus or ErrDecode, see Classify.
func (c *Client) FetchProfile(ctx context.Context, uid uint32, lang Language) (*Profile, error) {
	target, errURL := ProfileURL(c.baseURL, uid, lang)
	if errURL != nil {
		return nil, errors.Join(errURL, ErrFetchProfile)
	}

	body, errBody := c.get(ctx, target)
	if errBody != nil {
		return nil, errors.Join(errBody, ErrFetchProfile)
	}

	profile, errProfile := ParseProfile(body)
	if errProfile != nil {
		return nil, errors.Join(errProfile, ErrFetchProfile)
	}

	slog.Debug("Fetched profile", slog.String("uid", profile.Player.UID),
		slog.Int("characters", len(profile.Characters)))

	return profile, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if errReq != nil {
		return nil, errors.Join(errReq, ErrRequest)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return nil, errors.Join(errResp, ErrRequest)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.Debug("Profile request rejected", slog.String("url", target),
			slog.Int("status_code", resp.StatusCode))

		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, errors.Join(errRead, ErrRequest)
	}

	slog.Debug("Profile response received", slog.String("url", target),
		slog.Int("status_code", resp.StatusCode), slog.String("size", humanize.Bytes(uint64(len(body)))))

	return body, nil
}
