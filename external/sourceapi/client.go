package sourceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/resilience"
)

// ErrTransient marks provider failures that are worth retrying: network
// errors, 429 and 5xx responses. Everything else is permanent.
var ErrTransient = errors.New("transient source api error")

const (
	defaultTimeout   = 10 * time.Second
	defaultRetries   = 2
	defaultBodyLimit = 4 << 20
)

type ClientConfig struct {
	BaseURL    string
	APIToken   string
	Timeout    time.Duration
	MaxRetries int
	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes int64
	Breaker          resilience.CircuitBreakerOptions
	Logger           *logging.Logger
}

// Client talks to the statistics provider. All fetches share the same
// envelope contract: a non-"Success" result is absence, never an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	bodyLimit  int64
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("source api base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = defaultRetries
	}
	bodyLimit := cfg.MaxResponseBytes
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		token:      strings.TrimSpace(cfg.APIToken),
		maxRetries: retries,
		bodyLimit:  bodyLimit,
		breaker:    resilience.NewCircuitBreaker(cfg.Breaker),
		logger:     logger,
	}, nil
}

func (c *Client) TournamentList(ctx context.Context) ([]Tournament, bool, error) {
	var out []Tournament
	ok, err := c.fetch(ctx, "/tournaments", nil, &out)
	return out, ok, err
}

func (c *Client) TeamList(ctx context.Context, tournamentID int64) ([]TeamSummary, bool, error) {
	var out []TeamSummary
	ok, err := c.fetch(ctx, "/tournaments/"+strconv.FormatInt(tournamentID, 10)+"/teams", nil, &out)
	return out, ok, err
}

func (c *Client) TeamStats(ctx context.Context, teamID, tournamentID int64) (TeamStats, bool, error) {
	var out TeamStats
	ok, err := c.fetch(ctx, "/teams/"+strconv.FormatInt(teamID, 10)+"/stats", tournamentQuery(tournamentID), &out)
	return out, ok, err
}

func (c *Client) PlayerStats(ctx context.Context, playerID, tournamentID int64) (PlayerStats, bool, error) {
	var out PlayerStats
	ok, err := c.fetch(ctx, "/players/"+strconv.FormatInt(playerID, 10)+"/stats", tournamentQuery(tournamentID), &out)
	return out, ok, err
}

func (c *Client) CoachStats(ctx context.Context, coachID, tournamentID int64) (CoachStats, bool, error) {
	var out CoachStats
	ok, err := c.fetch(ctx, "/coaches/"+strconv.FormatInt(coachID, 10)+"/stats", tournamentQuery(tournamentID), &out)
	return out, ok, err
}

func (c *Client) RefereeList(ctx context.Context, tournamentID int64) ([]RefereeSummary, bool, error) {
	var out []RefereeSummary
	ok, err := c.fetch(ctx, "/tournaments/"+strconv.FormatInt(tournamentID, 10)+"/referees", nil, &out)
	return out, ok, err
}

func (c *Client) RefereeStats(ctx context.Context, refereeID, tournamentID int64) (RefereeStats, bool, error) {
	var out RefereeStats
	ok, err := c.fetch(ctx, "/referees/"+strconv.FormatInt(refereeID, 10)+"/stats", tournamentQuery(tournamentID), &out)
	return out, ok, err
}

func (c *Client) GroupStandings(ctx context.Context, tournamentID int64) (GroupStandings, bool, error) {
	var out GroupStandings
	ok, err := c.fetch(ctx, "/tournaments/"+strconv.FormatInt(tournamentID, 10)+"/standings", nil, &out)
	return out, ok, err
}

func tournamentQuery(tournamentID int64) url.Values {
	q := url.Values{}
	q.Set("tournamentId", strconv.FormatInt(tournamentID, 10))
	return q
}

// fetch runs one envelope request under singleflight and decodes data
// into out. ok=false means the provider reported a non-Success result.
func (c *Client) fetch(ctx context.Context, path string, query url.Values, out any) (bool, error) {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	type fetchResult struct {
		data json.RawMessage
		ok   bool
	}

	value, err, _ := c.flight.Do(key, func() (any, error) {
		data, ok, doErr := c.doEnvelope(ctx, path, query)
		if doErr != nil {
			return nil, doErr
		}
		return fetchResult{data: data, ok: ok}, nil
	})
	if err != nil {
		return false, err
	}

	result, _ := value.(fetchResult)
	if !result.ok {
		return false, nil
	}
	if len(result.data) == 0 || string(result.data) == "null" {
		return false, nil
	}
	if err := sonic.Unmarshal(result.data, out); err != nil {
		return false, fmt.Errorf("decode source payload %s: %w", path, err)
	}

	return true, nil
}

func (c *Client) doEnvelope(ctx context.Context, path string, query url.Values) (json.RawMessage, bool, error) {
	if err := c.breaker.Allow(); err != nil {
		return nil, false, errors.Mark(fmt.Errorf("source api %s: %w", path, err), ErrTransient)
	}

	body, err := c.executeRequest(ctx, path, query)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, false, err
	}
	c.breaker.RecordSuccess()

	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, false, fmt.Errorf("decode source envelope %s: %w", path, err)
	}
	if env.Result != resultSuccess {
		c.logger.DebugContext(ctx, "source api returned non-success envelope",
			"path", path,
			"result", env.Result,
			"message", env.Message,
		)
		return nil, false, nil
	}

	return env.Data, true, nil
}

func (c *Client) executeRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, retryable, err := c.doRequest(ctx, requestURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.logger.WarnContext(ctx, "source api request failed, retrying",
			"path", path,
			"attempt", attempt+1,
			"error", c.redact(err.Error()),
		)
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, requestURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, errors.Mark(fmt.Errorf("source api request: %s", c.redact(err.Error())), ErrTransient)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.bodyLimit))
	if err != nil {
		return nil, true, errors.Mark(fmt.Errorf("read source response: %w", err), ErrTransient)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return data, false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, errors.Mark(fmt.Errorf("source api status %d", resp.StatusCode), ErrTransient)
	default:
		return nil, false, fmt.Errorf("source api status %d", resp.StatusCode)
	}
}

// redact strips the API token from text destined for logs or errors.
func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "[REDACTED]")
}
