package championship

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/platform/resilience"
	"github.com/mahotsav/championship-admin/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL   = "http://localhost:8080/api"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20
)

var successMarker = []byte(`{"success":true}`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Notifier       usecase.Notifier
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the championship REST API. Every failure is converted into a
// *Failure, logged, and announced through the notifier before it is returned.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *logging.Logger
	notifier   usecase.Notifier
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
	// generation advances after every mutation; reads only share a request
	// within one generation.
	generation atomic.Uint64
}

// Result is the normalized success shape. A response without a body carries
// Empty=true and stands for the canonical {"success":true} marker.
type Result struct {
	StatusCode int
	Empty      bool
	Body       []byte
}

func (r Result) JSON() []byte {
	if r.Empty {
		return successMarker
	}
	return r.Body
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = usecase.NopNotifier()
	}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		httpClient = &copied
	}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker, func(from, to resilience.CircuitState) {
		logger.Warn("championship api circuit breaker changed state", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		notifier:   notifier,
		breaker:    breaker,
	}
}

func (c *Client) Teams() *TeamRepository {
	return &TeamRepository{client: c}
}

func (c *Client) Players() *PlayerRepository {
	return &PlayerRepository{client: c}
}

func (c *Client) Tournament() *TournamentRepository {
	return &TournamentRepository{client: c}
}

// Read issues a GET. Concurrent reads of the same endpoint share one request
// unless a mutation completed in between; a read issued after a mutation
// always reaches the server. A shared failure is reported once.
func (c *Client) Read(ctx context.Context, endpoint string) (Result, error) {
	key := http.MethodGet + " " + endpoint + "#" + strconv.FormatUint(c.generation.Load(), 10)
	out, err, _ := c.flight.Do(key, func() (any, error) {
		res, err := c.exchange(ctx, http.MethodGet, endpoint, nil, readFailedMessage(endpoint), c.maxRetries)
		if err != nil {
			return nil, c.fail(ctx, err)
		}
		return res, nil
	})
	if err != nil {
		return Result{}, err
	}

	res, ok := out.(Result)
	if !ok {
		return Result{}, c.fail(ctx, decodeFailure(http.MethodGet, endpoint, readFailedMessage(endpoint), fmt.Errorf("unexpected result type %T", out)))
	}
	return res, nil
}

// Mutate issues a POST, PUT or DELETE. Mutations are never retried.
func (c *Client) Mutate(ctx context.Context, method, endpoint string, body any) (Result, error) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return Result{}, c.fail(ctx, requestFailure(method, endpoint, crerr.Newf("unsupported mutate method %q", method)))
	}

	var payload []byte
	if body != nil && method != http.MethodDelete {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return Result{}, c.fail(ctx, requestFailure(method, endpoint, crerr.Wrap(err, "encode body")))
		}
		payload = encoded
	}

	defer c.generation.Add(1)
	res, err := c.exchange(ctx, method, endpoint, payload, mutationFailedMessage, 0)
	if err != nil {
		return Result{}, c.fail(ctx, err)
	}
	return res, nil
}

// decode unmarshals a successful result. A decode error is reported like any
// other transport failure.
func (c *Client) decode(ctx context.Context, method, endpoint string, res Result, target any) error {
	if res.Empty {
		return c.fail(ctx, decodeFailure(method, endpoint, failureMessage(method, endpoint), crerr.New("empty response body")))
	}
	if err := sonic.Unmarshal(res.Body, target); err != nil {
		return c.fail(ctx, decodeFailure(method, endpoint, failureMessage(method, endpoint), err))
	}
	return nil
}

func (c *Client) exchange(ctx context.Context, method, endpoint string, payload []byte, message string, retries int) (Result, error) {
	var res Result
	run := func() error {
		var err error
		res, err = c.executeRequest(ctx, method, endpoint, payload, message, retries)
		return err
	}

	err := c.breaker.Execute(run, isDependencyFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "championship api circuit breaker rejected request", "method", method, "endpoint", endpoint, "state", string(c.breaker.State()))
		return Result{}, networkFailure(method, endpoint, message, err)
	}
	return res, err
}

func (c *Client) executeRequest(ctx context.Context, method, endpoint string, payload []byte, message string, retries int) (Result, error) {
	fullURL := c.baseURL + endpoint

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return Result{}, networkFailure(method, endpoint, message, err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = networkFailure(method, endpoint, message, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = networkFailure(method, endpoint, message, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
					return Result{StatusCode: resp.StatusCode, Empty: true}, nil
				}
				return Result{StatusCode: resp.StatusCode, Body: raw}, nil
			default:
				lastErr = statusFailure(method, endpoint, message, resp.StatusCode, raw)
				if !isRetryableStatus(resp.StatusCode) {
					return Result{}, lastErr
				}
			}
		}

		if attempt == retries {
			break
		}
		backoff := time.Duration(attempt+1) * 200 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Result{}, networkFailure(method, endpoint, message, ctx.Err())
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = networkFailure(method, endpoint, message, crerr.New("request failed"))
	}
	return Result{}, lastErr
}

// fail logs the diagnostic detail of err and shows its operator message.
func (c *Client) fail(ctx context.Context, err error) error {
	f, ok := AsFailure(err)
	if !ok {
		c.logger.ErrorContext(ctx, "championship api call failed", "error", err)
		c.notifier.Error(ctx, mutationFailedMessage)
		return err
	}

	c.logger.WarnContext(ctx, "championship api call failed",
		"kind", string(f.Kind),
		"request", describeFailure(c.baseURL, f),
		"error", err,
	)
	c.notifier.Error(ctx, f.Message)
	return f
}

func describeFailure(baseURL string, f *Failure) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(f.Method)
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(baseURL)
	_, _ = buf.WriteString(f.Endpoint)
	if f.StatusCode > 0 {
		_, _ = buf.WriteString(" status=")
		_, _ = buf.WriteString(strconv.Itoa(f.StatusCode))
	}
	if f.Payload != "" {
		_, _ = buf.WriteString(" body=")
		_, _ = buf.WriteString(abbreviateBody(f.Payload))
	}
	return buf.String()
}

func failureMessage(method, endpoint string) string {
	if method == http.MethodGet {
		return readFailedMessage(endpoint)
	}
	return mutationFailedMessage
}

func isDependencyFailure(err error) bool {
	f, ok := AsFailure(err)
	if !ok {
		return false
	}
	return f.Kind == FailureNetwork || isRetryableStatus(f.StatusCode)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
