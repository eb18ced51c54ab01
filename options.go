package mailprobe

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/optimode/mailprobe/probe"
	"github.com/optimode/mailprobe/resolve"
)

// Default timeouts for the two network stages.
const (
	DefaultDNSTimeout  = resolve.DefaultTimeout
	DefaultSMTPTimeout = probe.DefaultTimeout
)

// Options configures a Verifier. The zero value is usable.
type Options struct {
	// DNSTimeout bounds each domain lookup. Values <= 0 mean
	// DefaultDNSTimeout: zero asks for the layer's default, it never
	// means instantaneous expiry.
	DNSTimeout time.Duration

	// SMTPTimeout bounds the dial and session of each SMTP candidate
	// probe, with the same zero-value rule as DNSTimeout.
	SMTPTimeout time.Duration

	// SMTPPort is the TCP port probed. Empty means "25".
	SMTPPort string

	// HostOnly forces basic host resolution instead of MX queries, for
	// environments whose resolver refuses record-type lookups.
	HostOnly bool

	// Logger receives debug diagnostics: fallback selections,
	// swallowed errors, per-candidate probe outcomes. The zero value
	// is silent.
	Logger zerolog.Logger
}

// normalized fills unset fields with their defaults.
func (o Options) normalized() Options {
	if o.DNSTimeout <= 0 {
		o.DNSTimeout = DefaultDNSTimeout
	}
	if o.SMTPTimeout <= 0 {
		o.SMTPTimeout = DefaultSMTPTimeout
	}
	if o.SMTPPort == "" {
		o.SMTPPort = probe.DefaultPort
	}
	return o
}

// BatchOptions configures VerifyMany.
type BatchOptions struct {
	// Workers is the number of concurrent goroutines. Values <= 0 mean
	// 1, which validates strictly sequentially in input order.
	Workers int
}
