/*
Package feed fetches and decodes the petitions feed.

The feed is a single JSON document served at <base>/petitions.json. Two
query variants exist: every petition, or only those above a signature
count floor.
*/
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/idilsaglam/petitions/internal/model"
)

const feedPath = "/petitions.json"

// Mode selects the feed variant.
type Mode int

const (
	// ModeAll lists every petition.
	ModeAll Mode = iota
	// ModeTopRated lists petitions at or above the signature floor.
	ModeTopRated
)

func (m Mode) String() string {
	if m == ModeTopRated {
		return "top"
	}
	return "all"
}

// Options configures a Client.
type Options struct {
	BaseURL        string
	Limit          int
	SignatureFloor int
	Timeout        time.Duration // zero means no client timeout
	UserAgent      string
}

// Client issues feed requests. It is safe for concurrent use.
type Client struct {
	http *resty.Client
	base string
	opts Options
	log  *slog.Logger
}

// NewClient builds a Client. A nil logger falls back to slog.Default().
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	base := strings.TrimRight(opts.BaseURL, "/")

	client := resty.New()
	client.SetBaseURL(base)
	client.SetTimeout(opts.Timeout)
	client.SetLogger(restyLogger{logger})
	client.SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	c := &Client{http: client, base: base, opts: opts, log: logger}
	client.OnBeforeRequest(c.onBeforeRequest)
	client.OnAfterResponse(c.onAfterResponse)
	client.OnError(c.onError)
	return c
}

func (c *Client) query(mode Mode) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.opts.Limit))
	if mode == ModeTopRated {
		q.Set("signatureCountFloor", strconv.Itoa(c.opts.SignatureFloor))
	}
	return q
}

// URL returns the endpoint requested for mode.
func (c *Client) URL(mode Mode) string {
	return c.base + feedPath + "?" + c.query(mode).Encode()
}

// Fetch downloads the raw feed for mode. Every failure is a *FetchError;
// there is no retry.
func (c *Client) Fetch(ctx context.Context, mode Mode) ([]byte, error) {
	u := c.URL(mode)
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(c.query(mode)).
		Get(feedPath)
	if err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &FetchError{URL: u, StatusCode: res.StatusCode()}
	}
	return res.Body(), nil
}

// Load fetches and parses the feed for mode.
func (c *Client) Load(ctx context.Context, mode Mode) ([]model.Petition, error) {
	data, err := c.Fetch(ctx, mode)
	if err != nil {
		return nil, err
	}
	petitions, err := Parse(data)
	if err != nil {
		return nil, err
	}
	c.log.Debug("feed loaded", "mode", mode.String(), "petitions", len(petitions))
	return petitions, nil
}

func (c *Client) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	c.log.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
	return nil
}

func (c *Client) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	c.log.DebugContext(res.Request.Context(), "request finished",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"bytes", len(res.Body()),
		"elapsed", res.Time(),
	)
	return nil
}

func (c *Client) onError(req *resty.Request, err error) {
	if errors.Is(err, context.Canceled) {
		c.log.DebugContext(req.Context(), "request cancelled", "url", req.URL)
		return
	}
	c.log.WarnContext(req.Context(), "request failed",
		"method", req.Method,
		"url", req.URL,
		"error", err,
	)
}

// restyLogger routes resty's own messages through slog.
type restyLogger struct{ log *slog.Logger }

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug(fmt.Sprintf(format, v...)) }
