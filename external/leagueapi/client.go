// Package leagueapi is the HTTP client for the league backend. It is
// the console's only data source: every repository in internal/domain
// is implemented here against the backend's REST surface.
package leagueapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/renca-fc/league-console/internal/platform/logging"
	"github.com/renca-fc/league-console/internal/platform/resilience"
	"github.com/renca-fc/league-console/internal/usecase"
)

const defaultBaseURL = "http://localhost:8000"

var errBackendTransient = crerr.New("league backend transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// doGET runs a GET with retries behind the circuit breaker. Identical
// in-flight reads collapse into one backend call; the token is part of
// the collapse key so authenticated reads never share a response with
// anonymous ones.
func (c *Client) doGET(ctx context.Context, token, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "league backend circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: league backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := token + "|" + fullURL
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeGET(ctx, token, fullURL)
		c.recordCircuitResult(reqErr)
		return raw, reqErr
	})
	if err != nil {
		return demoteTransient(err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

func (c *Client) executeGET(ctx context.Context, token, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errBackendTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errBackendTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				lastErr = statusError(resp.StatusCode, raw, false)
				if !isRetryableStatus(resp.StatusCode) {
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("backend request failed")
	}
	c.logger.WarnContext(ctx, "league backend request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// doSend runs a mutating request. Writes are not retried: the backend
// treats them as non-idempotent and the operator can always resubmit.
func (c *Client) doSend(ctx context.Context, method, token, path string, payload, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "league backend circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: league backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	var body io.Reader
	if payload != nil {
		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("encode request payload: %w", err)
		}
		body = bytes.NewReader(buf.B)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return demoteTransient(c.sendAndDecode(ctx, req, target))
}

func (c *Client) sendAndDecode(ctx context.Context, req *http.Request, target any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		sendErr := fmt.Errorf("%w: send request: %v", errBackendTransient, err)
		c.recordCircuitResult(sendErr)
		c.logger.WarnContext(ctx, "league backend request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return sendErr
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		sendErr := fmt.Errorf("%w: read response body: %v", errBackendTransient, readErr)
		c.recordCircuitResult(sendErr)
		return sendErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := statusError(resp.StatusCode, raw, req.Method != http.MethodGet)
		c.recordCircuitResult(statusErr)
		return statusErr
	}

	c.recordCircuitResult(nil)
	if target == nil {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

// uploadFile posts a multipart form with a single file field.
func (c *Client) uploadFile(ctx context.Context, token, path string, query url.Values, filename string, file io.Reader, target any) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return demoteTransient(c.sendAndDecode(ctx, req, target))
}

// postForm posts application/x-www-form-urlencoded, which is what the
// backend's token endpoint expects.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return demoteTransient(c.sendAndDecode(ctx, req, target))
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled {
		return
	}
	if err != nil && stderrors.Is(err, errBackendTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

// statusError maps a backend response to the console's sentinel
// errors. Client errors on writes surface as conflicts so handlers can
// show the backend's detail message; on reads a 400 means the console
// built a bad request.
func statusError(status int, body []byte, write bool) error {
	detail := extractDetail(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", usecase.ErrUnauthorized, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, detail)
	case status == http.StatusBadRequest || status == http.StatusConflict:
		if write {
			return fmt.Errorf("%w: %s", usecase.ErrConflict, detail)
		}
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, detail)
	case isRetryableStatus(status):
		return fmt.Errorf("%w: backend status=%d body=%s", errBackendTransient, status, abbreviateBody(body))
	default:
		return fmt.Errorf("backend status=%d body=%s", status, abbreviateBody(body))
	}
}

// demoteTransient converts the internal transient marker, which only
// exists to drive the circuit breaker, into the dependency sentinel
// the usecase layer understands.
func demoteTransient(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, errBackendTransient) {
		return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}
	return err
}

func extractDetail(body []byte) string {
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := sonic.Unmarshal(body, &envelope); err == nil && strings.TrimSpace(envelope.Detail) != "" {
		return strings.TrimSpace(envelope.Detail)
	}
	return abbreviateBody(body)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
