// Package preflight resolves a configured chain endpoint that may be given
// as a bare host:port or with an explicit http(s)/grpc scheme, probing
// candidate schemes in order and returning the first reachable one. This
// mirrors the original orchestrator's connection_prep utility, referenced
// directly by spec §1 as "transparent URL-scheme fallback handled by a
// preflight utility".
package preflight

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// Probe is injected so callers can supply a real dialer in production and
// a fake one in tests.
type Probe func(ctx context.Context, endpoint string) error

// ResolveEndpoint tries https:// and then http:// in front of a scheme-less
// endpoint, returning the first candidate that probe accepts.
// If raw already carries a scheme, it is tried as-is and no fallback is
// attempted.
func ResolveEndpoint(ctx context.Context, raw string, timeout time.Duration, probe Probe) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("endpoint is empty")
	}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := probe(pctx, raw); err != nil {
			return "", fmt.Errorf("probe %s: %w", raw, err)
		}
		return raw, nil
	}

	candidates := []string{"https://" + raw, "http://" + raw}
	var lastErr error
	for _, candidate := range candidates {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err := probe(pctx, candidate)
		cancel()
		if err == nil {
			return candidate, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("no reachable scheme for %s: %w", raw, lastErr)
}

// DialProbe is a Probe implementation that just checks TCP reachability of
// the host:port embedded in endpoint, suitable for gRPC endpoints that do
// not yet speak HTTP.
func DialProbe(ctx context.Context, endpoint string) error {
	host := endpoint
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		host = u.Host
	}
	if !strings.Contains(host, ":") {
		host += ":443"
	}
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		return err
	}
	return conn.Close()
}
