package resolve

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/optimode/mailprobe/types"
)

// hostResolver is the fallback implementation for environments without
// MX query support: a domain counts as deliverable when it resolves to
// any address at all.
type hostResolver struct {
	cfg Config
}

func (r *hostResolver) Lookup(ctx context.Context, domain string) Result {
	domain = normalize(domain)
	if domain == "" {
		return Result{Status: types.StatusInvalid, Message: "domain is empty", Method: types.MethodNone}
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	addrs, err := r.cfg.LookupHost(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return Result{
				Status:  types.StatusInvalid,
				Message: fmt.Sprintf("domain does not resolve: %v", err),
				Method:  types.MethodHost,
			}
		}
		// Anything else is still a definite negative here; this
		// implementation never propagates an error.
		return Result{
			Status:  types.StatusInvalid,
			Message: fmt.Sprintf("unexpected DNS error: %v", err),
			Method:  types.MethodHost,
		}
	}
	if len(addrs) == 0 {
		return Result{Status: types.StatusInvalid, Message: "domain does not resolve", Method: types.MethodHost}
	}

	return Result{Status: types.StatusOK, Message: "domain resolves via A/AAAA records", Method: types.MethodHost}
}

// MXHosts reports no capability; the prober degrades to its heuristic
// candidates.
func (r *hostResolver) MXHosts(ctx context.Context, domain string) ([]string, error) {
	return nil, nil
}
