package linkcheck

import (
	"context"
	"crypto/x509"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	webclient "content_intelligence/internal/adaptors"
	"content_intelligence/internal/domain/adaptors"
	"content_intelligence/internal/domain/models"
	"content_intelligence/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWebClient struct {
	mock.Mock
}

func (m *MockWebClient) Do(ctx context.Context, url string, method string) ([]byte, int, error) {
	args := m.Called(ctx, url, method)
	var body []byte
	if b := args.Get(0); b != nil {
		body = b.([]byte)
	}
	return body, args.Int(1), args.Error(2)
}

type staticResolver map[string][]string

func (r staticResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, ok := r[host]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}
	var out []net.IPAddr
	for _, ip := range ips {
		out = append(out, net.IPAddr{IP: net.ParseIP(ip)})
	}
	return out, nil
}

var resolver = staticResolver{
	"ok.example":       {"93.184.216.34"},
	"head.example":     {"93.184.216.35"},
	"missing.example":  {"93.184.216.36"},
	"slow.example":     {"93.184.216.37"},
	"refused.example":  {"93.184.216.38"},
	"badcert.example":  {"93.184.216.39"},
	"intranet.example": {"10.0.0.8"},
	"mixed.example":    {"93.184.216.40", "127.0.0.1"},
	"rebind.example":   {"93.184.216.41"},
}

func newChecker(client *MockWebClient) *Checker {
	return NewChecker(log.New(), client, resolver, Options{Timeout: time.Second, RatePerSecond: 1000})
}

func TestChecker_Categories(t *testing.T) {
	client := new(MockWebClient)
	client.On("Do", mock.Anything, "https://ok.example/", http.MethodHead).Return(nil, http.StatusOK, nil)
	client.On("Do", mock.Anything, "https://head.example/", http.MethodHead).Return(nil, http.StatusMethodNotAllowed, nil)
	client.On("Do", mock.Anything, "https://head.example/", http.MethodGet).Return([]byte("ok"), http.StatusOK, nil)
	client.On("Do", mock.Anything, "https://missing.example/", http.MethodHead).Return(nil, http.StatusNotFound, nil)
	client.On("Do", mock.Anything, "https://slow.example/", http.MethodHead).Return(nil, 0, errors.Wrap(context.DeadlineExceeded, "request failed"))
	client.On("Do", mock.Anything, "https://refused.example/", http.MethodHead).
		Return(nil, 0, errors.Wrap(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, "request failed"))
	client.On("Do", mock.Anything, "https://badcert.example/", http.MethodHead).
		Return(nil, 0, errors.Wrap(x509.UnknownAuthorityError{}, "request failed"))
	client.On("Do", mock.Anything, "https://rebind.example/", http.MethodHead).
		Return(nil, 0, errors.Wrap(&net.OpError{Op: "dial", Net: "tcp", Err: DialGuard("tcp", "127.0.0.1:443")}, "request failed"))

	cases := []struct {
		url      string
		ok       bool
		code     int
		category models.LinkErrorCategory
	}{
		{url: "https://ok.example/", ok: true, code: 200},
		{url: "https://head.example/", ok: true, code: 200},
		{url: "https://missing.example/", code: 404, category: models.LinkErrorHTTP},
		{url: "https://slow.example/", category: models.LinkErrorTimeout},
		{url: "https://refused.example/", category: models.LinkErrorConnection},
		{url: "https://badcert.example/", category: models.LinkErrorSSL},
		{url: "https://nowhere.example/", category: models.LinkErrorDNS},
		{url: "https://intranet.example/", category: models.LinkErrorBlocked},
		{url: "https://mixed.example/", category: models.LinkErrorBlocked},
		{url: "https://rebind.example/", category: models.LinkErrorBlocked},
		{url: "http://127.0.0.1:8080/admin", category: models.LinkErrorBlocked},
		{url: "http://[::1]/", category: models.LinkErrorBlocked},
		{url: "http://169.254.169.254/latest/meta-data", category: models.LinkErrorBlocked},
		{url: "http://localhost/", category: models.LinkErrorBlocked},
		{url: "ftp://ok.example/file", category: models.LinkErrorInvalidURL},
		{url: "/relative/path", category: models.LinkErrorInvalidURL},
	}

	var urls []string
	for _, tc := range cases {
		urls = append(urls, tc.url)
	}
	statuses := newChecker(client).Check(context.Background(), urls)
	require.Len(t, statuses, len(cases))

	for i, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			s := statuses[i]
			assert.Equal(t, tc.url, s.URL)
			assert.Equal(t, tc.ok, s.OK)
			assert.Equal(t, tc.code, s.StatusCode)
			assert.Equal(t, tc.category, s.Category)
			if !tc.ok {
				assert.NotEmpty(t, s.Error)
			}
		})
	}

	client.AssertNotCalled(t, "Do", mock.Anything, "https://intranet.example/", mock.Anything)
	client.AssertNotCalled(t, "Do", mock.Anything, "https://ok.example/", http.MethodGet)
}

func TestChecker_DeduplicatesAndKeepsOrder(t *testing.T) {
	client := new(MockWebClient)
	client.On("Do", mock.Anything, mock.Anything, http.MethodHead).Return(nil, http.StatusOK, nil)

	statuses := newChecker(client).Check(context.Background(), []string{
		"https://ok.example/b", "https://ok.example/a", " https://ok.example/b ",
	})

	require.Len(t, statuses, 2)
	assert.Equal(t, "https://ok.example/b", statuses[0].URL)
	assert.Equal(t, "https://ok.example/a", statuses[1].URL)
	client.AssertNumberOfCalls(t, "Do", 2)
}

func TestChecker_Empty(t *testing.T) {
	statuses := newChecker(new(MockWebClient)).Check(context.Background(), nil)
	assert.Empty(t, statuses)
}

func TestChecker_CancelledContext(t *testing.T) {
	client := new(MockWebClient)
	client.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(nil, http.StatusOK, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	statuses := newChecker(client).Check(ctx, []string{"https://ok.example/1", "https://ok.example/2"})

	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.False(t, s.OK)
		assert.Equal(t, models.LinkErrorTimeout, s.Category)
	}
}

func TestChecker_CancelledMidBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := new(MockWebClient)
	client.On("Do", mock.Anything, "https://ok.example/1", http.MethodHead).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, http.StatusOK, nil).Once()
	checker := NewChecker(log.New(), client, resolver, Options{Timeout: time.Second, BatchSize: 1, RatePerSecond: 1000})

	statuses := checker.Check(ctx, []string{"https://ok.example/1", "https://ok.example/2", "https://ok.example/3"})

	require.Len(t, statuses, 3)
	assert.True(t, statuses[0].OK)
	for _, s := range statuses[1:] {
		assert.False(t, s.OK)
		assert.Equal(t, models.LinkErrorTimeout, s.Category)
	}
	client.AssertNumberOfCalls(t, "Do", 1)
}

func TestChecker_RedirectToPrivateAddressIsBlocked(t *testing.T) {
	var internalHits atomic.Int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		internalHits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer internal.Close()

	public := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, internal.URL+"/latest/meta-data", http.StatusFound)
	}))
	defer public.Close()

	// both servers listen on loopback; only the first hop is treated as public
	publicAddr := public.Listener.Addr().String()
	guard := func(network, address string) error {
		if address == publicAddr {
			return nil
		}
		return DialGuard(network, address)
	}
	client := webclient.NewWebClient(time.Second, log.New(), webclient.WithDialGuard(guard))
	checker := NewChecker(log.New(), client, resolver, Options{Timeout: time.Second, RatePerSecond: 1000})
	checker.public = func(net.IP) bool { return true }

	statuses := checker.Check(context.Background(), []string{public.URL + "/go"})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].OK)
	assert.Equal(t, models.LinkErrorBlocked, statuses[0].Category)
	assert.Equal(t, int32(0), internalHits.Load())
}

func TestDialGuard(t *testing.T) {
	cases := []struct {
		address string
		blocked bool
	}{
		{address: "93.184.216.34:443"},
		{address: "[2606:4700::1]:80"},
		{address: "127.0.0.1:80", blocked: true},
		{address: "169.254.169.254:80", blocked: true},
		{address: "10.0.0.8:8080", blocked: true},
		{address: "[::1]:443", blocked: true},
		{address: "0.0.0.0:80", blocked: true},
	}
	for _, tc := range cases {
		t.Run(tc.address, func(t *testing.T) {
			err := DialGuard("tcp", tc.address)
			if tc.blocked {
				assert.True(t, errors.Is(err, adaptors.ErrBlockedAddress))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Error(t, DialGuard("tcp", "no-port"))
}

func TestIsPublic(t *testing.T) {
	cases := map[string]bool{
		"8.8.8.8":     true,
		"10.1.2.3":    false,
		"172.16.0.1":  false,
		"192.168.1.1": false,
		"127.0.0.1":   false,
		"169.254.1.1": false,
		"0.0.0.0":     false,
		"fd00::1":     false,
		"fe80::1":     false,
		"2001:db8::1": true,
	}
	for ip, want := range cases {
		assert.Equal(t, want, isPublic(net.ParseIP(ip)), ip)
	}
}
