package adaptors

import (
	"context"
	"errors"
)

// ErrBlockedAddress is returned when a client refuses to connect to an address.
var ErrBlockedAddress = errors.New(`address is not public`)

// WebClient issues one outbound request and returns the body, the status code
// and any transport error. Callers classify transport errors themselves.
type WebClient interface {
	Do(ctx context.Context, url string, method string) ([]byte, int, error)
}
