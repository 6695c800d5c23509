package adaptors

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

const userAgent = `content-intelligence-linkcheck/1.0 (+https://github.com/content-intelligence)`

type WebClient struct {
	client *http.Client
	log    *log.Logger
}

type WebClientOption func(*webClientOptions)

type webClientOptions struct {
	dialGuard func(network, address string) error
}

// WithDialGuard runs guard against every address the client connects to,
// redirect hops included. A non-nil error aborts the connection.
func WithDialGuard(guard func(network, address string) error) WebClientOption {
	return func(o *webClientOptions) {
		o.dialGuard = guard
	}
}

func NewWebClient(timeout time.Duration, log *log.Logger, opts ...WebClientOption) *WebClient {
	var o webClientOptions
	for _, opt := range opts {
		opt(&o)
	}

	var transport http.RoundTripper = http.DefaultTransport
	if o.dialGuard != nil {
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			Control: func(network, address string, _ syscall.RawConn) error {
				return o.dialGuard(network, address)
			},
		}
		guarded := http.DefaultTransport.(*http.Transport).Clone()
		// a proxy would hide the real destination from the guard
		guarded.Proxy = nil
		guarded.DialContext = dialer.DialContext
		transport = guarded
	}

	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, transport))

	return &WebClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rTripper,
		},
		log: log,
	}
}

// Do issues one request and returns at most maxBodyBytes of the body with the
// status code. Transport errors are wrapped so that callers can still inspect
// the underlying net or TLS error.
func (w *WebClient) Do(ctx context.Context, url string, method string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		w.log.WithError(err).Debug(`failed to create request`)
		return nil, 0, errors.Wrap(err, `failed to create request`)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := w.client.Do(req)
	if err != nil {
		metrics.HTTPClientErrorsTotal.WithLabelValues(method, "0").Inc()
		w.log.WithError(err).WithField(`url`, url).Debug(`request failed`)
		return nil, 0, errors.Wrap(err, `request failed`)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.HTTPClientErrorsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	}

	bodyByte, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		w.log.Errorf(`failed to read response body. error: %v`, err)
		return nil, 0, errors.Wrap(err, `failed to read response body`)
	}

	return bodyByte, resp.StatusCode, nil
}
