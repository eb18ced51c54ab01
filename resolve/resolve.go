// Package resolve determines whether a domain has a deliverable mail
// path. The primary implementation queries MX records; a fallback
// implementation performs basic host resolution for environments whose
// resolver cannot serve record-type queries.
package resolve

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimode/mailprobe/types"
)

// DefaultTimeout bounds a single lookup when Config.Timeout is not set.
const DefaultTimeout = 5 * time.Second

// Result describes the outcome of a domain lookup.
type Result struct {
	Status  types.Status `json:"status"`
	Message string       `json:"message"`
	MXHosts []string     `json:"mx_hosts"`
	Method  types.Method `json:"method"`
}

// Resolver reports whether a domain has a deliverable mail path.
type Resolver interface {
	// Lookup classifies the domain within the configured timeout. The
	// input is trimmed and lower-cased; an empty domain yields an
	// invalid result without any network call.
	Lookup(ctx context.Context, domain string) Result

	// MXHosts returns the MX exchange hostnames for the domain in
	// preference order, with trailing root-label dots stripped. Unlike
	// Lookup it honors only the caller's context deadline.
	// Implementations without MX capability return (nil, nil).
	MXHosts(ctx context.Context, domain string) ([]string, error)
}

// Config controls lookup behavior. The zero value is usable.
type Config struct {
	// Timeout bounds each Lookup call. Values <= 0 mean DefaultTimeout.
	Timeout time.Duration

	// HostOnly forces the basic host-resolution implementation even
	// when MX queries are supported, for resolvers that refuse
	// record-type queries.
	HostOnly bool

	Logger zerolog.Logger

	// LookupMX and LookupHost override the stdlib resolver calls.
	// Injectable for testability; nil means net.DefaultResolver.
	LookupMX   func(ctx context.Context, domain string) ([]*net.MX, error)
	LookupHost func(ctx context.Context, domain string) ([]string, error)
}

// New selects the resolution implementation available in this
// environment: MX record queries when the resolver supports them,
// otherwise basic host resolution. The selection happens once, here;
// callers depend only on the Resolver interface.
func New(cfg Config) Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.LookupMX == nil {
		cfg.LookupMX = net.DefaultResolver.LookupMX
	}
	if cfg.LookupHost == nil {
		cfg.LookupHost = net.DefaultResolver.LookupHost
	}

	if cfg.HostOnly || !mxSupported() {
		cfg.Logger.Debug().Msg("mx lookups unavailable, using host resolution")
		return &hostResolver{cfg: cfg}
	}
	return &mxResolver{cfg: cfg}
}

// mxSupported reports whether the runtime resolver can answer MX
// queries. net.Resolver implements LookupMX on every supported
// platform, so the capability probe is statically satisfied; the
// host-resolution path stays reachable through Config.HostOnly.
func mxSupported() bool { return true }

// normalize applies the lookup input contract: surrounding whitespace
// is dropped and the domain is lower-cased.
func normalize(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
