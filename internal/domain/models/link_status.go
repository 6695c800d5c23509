package models

// LinkErrorCategory classifies why an external link could not be reached.
type LinkErrorCategory string

const (
	LinkErrorNone       LinkErrorCategory = ""
	LinkErrorTimeout    LinkErrorCategory = "timeout"
	LinkErrorDNS        LinkErrorCategory = "dns"
	LinkErrorConnection LinkErrorCategory = "connection"
	LinkErrorSSL        LinkErrorCategory = "ssl"
	LinkErrorBlocked    LinkErrorCategory = "blocked-private-ip"
	LinkErrorInvalidURL LinkErrorCategory = "invalid-url"
	LinkErrorHTTP       LinkErrorCategory = "http-error"
)

// LinkStatus is the reachability verdict of one external URL.
type LinkStatus struct {
	URL        string            `json:"url"`
	OK         bool              `json:"ok"`
	StatusCode int               `json:"statusCode,omitempty"`
	Category   LinkErrorCategory `json:"category,omitempty"`
	Error      string            `json:"error,omitempty"`
	DurationMs int64             `json:"durationMs"`
}
