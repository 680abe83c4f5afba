package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"rosterview/internal/jsonutil"
	"rosterview/internal/logging"
	"rosterview/internal/metrics"
	"rosterview/internal/telemetry"
)

// DefaultURL is the roster endpoint used when none is configured.
const DefaultURL = "https://rosterbuster.aero/wp-content/uploads/dummy-response.json"

// DefaultTimeout bounds a single fetch, including reading the body.
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 16 << 20

// Fetcher retrieves the full roster.
type Fetcher interface {
	Fetch(ctx context.Context) ([]DutyRecord, error)
}

// Client fetches the roster over HTTP with a single unauthenticated GET.
type Client struct {
	url  string
	opts options
}

var _ Fetcher = (*Client)(nil)

// options holds the transport and instrumentation settings shared by Client
// and Observed.
type options struct {
	client  *http.Client
	timeout time.Duration
	log     logging.Logger
	tracer  oteltrace.Tracer
	metrics *metrics.Metrics
}

func defaultOptions() options {
	return options{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		log:     logging.Nop(),
		tracer:  telemetry.Disabled().Tracer(),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Client or an Observed fetcher.
type Option func(*options)

// WithHTTPClient sets the underlying HTTP client. Only Client uses it.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.client = hc }
}

// WithTimeout sets the per-fetch timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTelemetry sets the tracer source.
func WithTelemetry(p *telemetry.Provider) Option {
	return func(o *options) { o.tracer = p.Tracer() }
}

// WithMetrics sets the fetch instruments.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewClient creates a client for url. An empty url means DefaultURL.
func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{url: url, opts: newOptions(opts)}
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.url
}

// Fetch issues the GET and decodes the body. Failures are *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]DutyRecord, error) {
	return c.opts.observe(ctx, c.url, c.do)
}

// Observed wraps src so each fetch gets the same timeout, fetch id, span,
// metrics and log lines as a Client fetch. source names src in logs and spans.
func Observed(src Fetcher, source string, opts ...Option) Fetcher {
	return &observed{src: src, source: source, opts: newOptions(opts)}
}

type observed struct {
	src    Fetcher
	source string
	opts   options
}

func (o *observed) Fetch(ctx context.Context) ([]DutyRecord, error) {
	return o.opts.observe(ctx, o.source, func(ctx context.Context, _ oteltrace.Span) ([]DutyRecord, error) {
		return o.src.Fetch(ctx)
	})
}

// observe runs fetch under the roster.fetch span and records its outcome.
func (o options) observe(ctx context.Context, source string, fetch func(context.Context, oteltrace.Span) ([]DutyRecord, error)) ([]DutyRecord, error) {
	fetchID := uuid.NewString()
	log := o.log.With("fetch_id", fetchID, "url", source)
	start := time.Now()

	ctx, span := o.tracer.Start(ctx, "roster.fetch", oteltrace.WithAttributes(
		attribute.String("roster.fetch.id", fetchID),
		attribute.String("url.full", source),
	))
	defer span.End()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	records, err := fetch(ctx, span)
	outcome := outcomeOf(err)
	o.metrics.ObserveFetch(outcome, time.Since(start), len(records))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if outcome == metrics.OutcomeCanceled {
			log.Debug("roster fetch canceled")
		} else {
			log.Error("roster fetch failed", "outcome", outcome, "error", err)
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("roster.duties", len(records)))
	log.Info("roster fetched", "duties", len(records), "elapsed", time.Since(start))
	return records, nil
}

func (c *Client) do(ctx context.Context, span oteltrace.Span) ([]DutyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: c.url, Err: err}
	}
	resp, err := c.opts.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &FetchError{
			Kind:       KindStatus,
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: c.url, Err: fmt.Errorf("read body: %w", err)}
	}
	records, err := Parse(body)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: c.url, Err: err}
	}
	return records, nil
}

// Parse decodes a roster payload: a JSON array of duty objects whose values
// are strings or null.
func Parse(data []byte) ([]DutyRecord, error) {
	return jsonutil.UnmarshalArray[DutyRecord](data, "roster response")
}

// FileSource reads a roster payload from disk instead of the network. Wrap it
// with Observed for logging, tracing and metrics.
type FileSource struct {
	Path string
}

var _ Fetcher = FileSource{}

// Fetch reads and parses the file. Failures are *FetchError.
func (f FileSource) Fetch(ctx context.Context) ([]DutyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: f.URL(), Err: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: f.URL(), Err: err}
	}
	records, err := Parse(data)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: f.URL(), Err: err}
	}
	return records, nil
}

// URL names the file as a file:// URL.
func (f FileSource) URL() string {
	return "file://" + f.Path
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeCanceled
	case errors.Is(err, ErrStatus):
		return metrics.OutcomeStatus
	case errors.Is(err, ErrDecode):
		return metrics.OutcomeDecode
	default:
		return metrics.OutcomeTransport
	}
}
