// Package security guards outbound fetches of caller-supplied origin URLs.
package security

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	apperrors "dive-media/utils/errors"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

var metadataHosts = []string{
	"169.254.169.254",          // AWS/Azure/GCP metadata
	"metadata.google.internal", // GCP metadata
	"100.100.100.200",          // Alibaba Cloud
	"192.0.0.192",              // Oracle Cloud
}

var internalSuffixes = []string{
	".local", ".internal", ".corp", ".lan", ".intranet", ".localhost", ".cluster.local",
}

// Cyrillic letters that render like Latin ones.
var confusables = []rune{'а', 'е', 'о', 'р', 'с', 'х'}

// BlockedError describes why an origin URL was refused.
type BlockedError struct {
	Message string
	Type    string
	Details map[string]interface{}
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap lets callers match every refusal with errors.Is(err, ErrOriginBlocked).
func (e *BlockedError) Unwrap() error {
	return apperrors.ErrOriginBlocked
}

// OriginGuard validates origin URLs before they are fetched and again at
// connection time. Metadata endpoints are always refused; private networks
// only when allowPrivate is false.
type OriginGuard struct {
	allowPrivate bool
}

func NewOriginGuard(allowPrivate bool) *OriginGuard {
	return &OriginGuard{allowPrivate: allowPrivate}
}

// ValidateURL parses raw and checks scheme, host and literal IPs.
func (g *OriginGuard) ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, &BlockedError{Message: err.Error(), Type: "PARSE_ERROR"}
	}
	if err := g.Validate(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate runs the pre-flight checks on an already parsed URL.
func (g *OriginGuard) Validate(u *url.URL) error {
	if u == nil || u.Host == "" {
		return &BlockedError{Message: "empty host not allowed", Type: "BASIC_VALIDATION_ERROR"}
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return &BlockedError{
			Message: "only HTTP and HTTPS schemes allowed",
			Type:    "SCHEME_VALIDATION_ERROR",
			Details: map[string]interface{}{"scheme": u.Scheme},
		}
	}

	hostname := strings.ToLower(u.Hostname())
	if hasConfusableChars(hostname) {
		return &BlockedError{
			Message: "unicode bypass detected",
			Type:    "UNICODE_BYPASS_BLOCKED",
			Details: map[string]interface{}{"hostname": hostname},
		}
	}

	ascii := hostname
	if net.ParseIP(hostname) == nil {
		var err error
		ascii, err = idna.Lookup.ToASCII(hostname)
		if err != nil {
			return &BlockedError{
				Message: "invalid internationalized domain name",
				Type:    "PUNYCODE_VALIDATION_ERROR",
				Details: map[string]interface{}{"hostname": hostname},
			}
		}
	}

	for _, endpoint := range metadataHosts {
		if ascii == endpoint {
			return &BlockedError{
				Message: "access to metadata endpoint not allowed",
				Type:    "METADATA_ENDPOINT_BLOCKED",
				Details: map[string]interface{}{"hostname": ascii},
			}
		}
	}

	if g.allowPrivate {
		return nil
	}

	if ascii == "localhost" {
		return &BlockedError{
			Message: "access to localhost not allowed",
			Type:    "INTERNAL_DOMAIN_BLOCKED",
			Details: map[string]interface{}{"hostname": ascii},
		}
	}
	for _, suffix := range internalSuffixes {
		if strings.HasSuffix(ascii, suffix) {
			return &BlockedError{
				Message: "access to internal domains not allowed",
				Type:    "INTERNAL_DOMAIN_BLOCKED",
				Details: map[string]interface{}{"hostname": ascii, "suffix": suffix},
			}
		}
	}

	if ip := net.ParseIP(ascii); ip != nil && isPrivateOrDangerous(ip) {
		return &BlockedError{
			Message: "access to private address not allowed",
			Type:    "PRIVATE_IP_BLOCKED",
			Details: map[string]interface{}{"ip": ip.String()},
		}
	}

	return nil
}

// CheckConnection is run against the resolved address right before dialing,
// which closes the DNS rebinding window left by Validate.
func (g *OriginGuard) CheckConnection(network, address string) error {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return &BlockedError{
			Message: "invalid connection address format",
			Type:    "CONNECTION_ADDRESS_ERROR",
			Details: map[string]interface{}{"address": address},
		}
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return &BlockedError{
			Message: "invalid IP address in connection",
			Type:    "INVALID_IP_ERROR",
			Details: map[string]interface{}{"host": host, "port": port},
		}
	}

	if isMetadataIP(ip) {
		return &BlockedError{
			Message: "connection to metadata endpoint IP blocked",
			Type:    "METADATA_IP_BLOCKED",
			Details: map[string]interface{}{"ip": ip.String(), "port": port},
		}
	}
	if !g.allowPrivate && isPrivateOrDangerous(ip) {
		return &BlockedError{
			Message: "connection to private/dangerous IP blocked",
			Type:    "PRIVATE_IP_BLOCKED",
			Details: map[string]interface{}{"ip": ip.String(), "port": port, "network": network},
		}
	}
	return nil
}

// NewHTTPClient returns a client whose dialer and redirect policy both go
// through the guard.
func (g *OriginGuard) NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
		Control: func(network, address string, _ syscall.RawConn) error {
			return g.CheckConnection(network, address)
		},
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			if err := g.Validate(req.URL); err != nil {
				return fmt.Errorf("redirect blocked: %w", err)
			}
			return nil
		},
	}
}

func hasConfusableChars(hostname string) bool {
	normalized := norm.NFKC.String(hostname)
	for _, r := range confusables {
		if strings.ContainsRune(normalized, r) {
			return true
		}
	}
	return false
}

func isMetadataIP(ip net.IP) bool {
	s := ip.String()
	for _, endpoint := range metadataHosts {
		if s == endpoint {
			return true
		}
	}
	return false
}

func isPrivateOrDangerous(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast()
}
