// Package linkcheck verifies that external URLs are reachable.
package linkcheck

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"
	"content_intelligence/internal/pkg/metrics"
	"content_intelligence/internal/pkg/worker_pool"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultBatchSize = 10
	DefaultRate      = 20
)

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type Options struct {
	// Timeout bounds each URL check, redirects included.
	Timeout time.Duration
	// BatchSize is the number of URLs checked at once.
	BatchSize int
	// RatePerSecond caps outbound requests across all workers.
	RatePerSecond float64
}

type Checker struct {
	log       *log.Logger
	client    adaptors.WebClient
	resolver  Resolver
	limiter   *rate.Limiter
	timeout   time.Duration
	batchSize int
	public    func(net.IP) bool
}

func NewChecker(log *log.Logger, client adaptors.WebClient, resolver Resolver, opts Options) *Checker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = DefaultRate
	}
	return &Checker{
		log:       log,
		client:    client,
		resolver:  resolver,
		limiter:   rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.BatchSize),
		timeout:   opts.Timeout,
		batchSize: opts.BatchSize,
		public:    isPublic,
	}
}

// Check returns one status per distinct URL, in order of first appearance.
// Failures are reported in the statuses, never as an error.
func (c *Checker) Check(ctx context.Context, urls []string) []models.LinkStatus {
	var unique []string
	seen := map[string]bool{}
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}

	statuses := make([]models.LinkStatus, len(unique))
	done := make([]bool, len(unique))
	if len(unique) == 0 {
		return statuses
	}
	c.log.Debugf(`checking %d external links`, len(unique))

	pool := worker_pool.NewWorkerPool(ctx, c.batchSize, false, c.log)
	go func() {
		defer pool.Close()
		for i, u := range unique {
			if ctx.Err() != nil {
				// queued checks are answered with the cancellation instead of running
				pool.Stop()
				return
			}
			if err := pool.Submit(strconv.Itoa(i), func(ctx context.Context) (any, error) {
				return c.checkOne(ctx, u), nil
			}); err != nil {
				return
			}
		}
	}()

	for res := range pool.ResultsCh {
		i, _ := strconv.Atoi(res.ID)
		if status, ok := res.Result.(models.LinkStatus); ok {
			statuses[i] = status
			done[i] = true
		}
	}

	for i, u := range unique {
		if !done[i] {
			statuses[i] = models.LinkStatus{URL: u, Category: models.LinkErrorTimeout, Error: `check cancelled`}
			metrics.LinkChecksTotal.WithLabelValues(string(models.LinkErrorTimeout)).Inc()
		}
	}
	return statuses
}

func (c *Checker) checkOne(ctx context.Context, raw string) models.LinkStatus {
	start := time.Now()
	status := c.fetchStatus(ctx, raw)
	status.URL = raw
	status.DurationMs = time.Since(start).Milliseconds()

	label := string(status.Category)
	if status.OK {
		label = `ok`
	}
	metrics.LinkChecksTotal.WithLabelValues(label).Inc()
	if !status.OK {
		c.log.WithFields(log.Fields{`url`: raw, `category`: status.Category, `status`: status.StatusCode}).Debug(`link check failed`)
	}
	return status
}

func (c *Checker) fetchStatus(ctx context.Context, raw string) models.LinkStatus {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return failed(models.LinkErrorInvalidURL, `only absolute http and https URLs can be checked`)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if category, msg := c.guard(ctx, u.Hostname()); category != models.LinkErrorNone {
		return failed(category, msg)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return failed(models.LinkErrorTimeout, err.Error())
	}

	_, code, err := c.client.Do(ctx, raw, http.MethodHead)
	if err == nil && (code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented) {
		_, code, err = c.client.Do(ctx, raw, http.MethodGet)
	}
	if err != nil {
		return failed(classify(err), err.Error())
	}
	if code >= http.StatusBadRequest {
		return models.LinkStatus{StatusCode: code, Category: models.LinkErrorHTTP, Error: http.StatusText(code)}
	}
	return models.LinkStatus{OK: true, StatusCode: code}
}

// guard rejects hosts that are or resolve to non-public addresses.
func (c *Checker) guard(ctx context.Context, host string) (models.LinkErrorCategory, string) {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return models.LinkErrorBlocked, `host resolves to a loopback address`
	}
	if ip := net.ParseIP(host); ip != nil {
		if !c.public(ip) {
			return models.LinkErrorBlocked, `address ` + ip.String() + ` is not public`
		}
		return models.LinkErrorNone, ""
	}

	addrs, err := c.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return classify(err), err.Error()
	}
	if len(addrs) == 0 {
		return models.LinkErrorDNS, `no addresses for ` + host
	}
	for _, a := range addrs {
		if !c.public(a.IP) {
			return models.LinkErrorBlocked, `address ` + a.IP.String() + ` is not public`
		}
	}
	return models.LinkErrorNone, ""
}

// DialGuard refuses connections to non-public addresses. Installed as the dial
// control of the checker's web client, it sees every redirect hop and every
// DNS answer, not only the first lookup done by guard.
func DialGuard(network, address string) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return errors.Wrap(err, `invalid dial address`)
	}
	if ip := net.ParseIP(host); ip == nil || !isPublic(ip) {
		return errors.Errorf("dial %s %s: %w", network, host, adaptors.ErrBlockedAddress)
	}
	return nil
}

func isPublic(ip net.IP) bool {
	return !(ip.IsPrivate() ||
		ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified())
}

// classify maps a transport error onto its category.
func classify(err error) models.LinkErrorCategory {
	if errors.Is(err, adaptors.ErrBlockedAddress) {
		return models.LinkErrorBlocked
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return models.LinkErrorTimeout
		}
		return models.LinkErrorDNS
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.LinkErrorTimeout
	}

	var (
		verifyErr  *tls.CertificateVerificationError
		headerErr  tls.RecordHeaderError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)
	if errors.As(err, &verifyErr) || errors.As(err, &headerErr) || errors.As(err, &authErr) ||
		errors.As(err, &hostErr) || errors.As(err, &invalidErr) {
		return models.LinkErrorSSL
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return models.LinkErrorTimeout
	}
	return models.LinkErrorConnection
}

func failed(category models.LinkErrorCategory, msg string) models.LinkStatus {
	return models.LinkStatus{Category: category, Error: msg}
}
