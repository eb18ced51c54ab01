// Package probe determines whether a mail server accepting connections
// is reachable for a domain. It connects to candidate hosts on the
// SMTP port and issues a single NOOP to confirm the server answers on
// the session layer; it never submits mail and never verifies
// recipients.
package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimode/mailprobe/types"
)

const (
	// DefaultTimeout bounds the dial and session on each candidate
	// host when Config.Timeout is not set.
	DefaultTimeout = 8 * time.Second

	// DefaultPort is the SMTP port probed when Config.Port is not set.
	DefaultPort = "25"
)

// Result describes the outcome of an SMTP reachability probe.
type Result struct {
	Status  types.Status `json:"status"`
	Message string       `json:"message"`
}

// MXSource lists MX exchange hosts for a domain, in probing order.
// resolve.Resolver satisfies it.
type MXSource interface {
	MXHosts(ctx context.Context, domain string) ([]string, error)
}

// Config controls probe behavior. The zero value is usable.
type Config struct {
	// Timeout bounds the dial and the whole session on each candidate
	// host, and the MX candidate lookup. Values <= 0 mean
	// DefaultTimeout.
	Timeout time.Duration

	// Port is the TCP port probed on each candidate. Empty means
	// DefaultPort.
	Port string

	// Source supplies MX-derived candidate hosts. Errors from it are
	// swallowed and the prober degrades to guessed hosts. Nil means
	// guessed hosts only.
	Source MXSource

	Logger zerolog.Logger

	// Dial is injectable for testing. Nil means a net.Dialer bounded
	// by Timeout.
	Dial func(ctx context.Context, network, address string) (net.Conn, error)
}

// Prober checks SMTP reachability for domains.
type Prober struct {
	cfg Config
}

// New creates a Prober, filling unset Config fields with defaults.
func New(cfg Config) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Dial == nil {
		d := &net.Dialer{Timeout: cfg.Timeout}
		cfg.Dial = d.DialContext
	}
	return &Prober{cfg: cfg}
}

// Check probes the candidate hosts for a domain in order and returns
// the first conclusive answer: ok or unreachable. Inconclusive
// candidates are skipped; if every candidate is inconclusive the
// result is unknown. No error and no panic escapes this method.
func (p *Prober) Check(ctx context.Context, domain string) Result {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return Result{Status: types.StatusUnknown, Message: "domain is empty; cannot perform SMTP check"}
	}

	for _, host := range p.candidates(ctx, domain) {
		select {
		case <-ctx.Done():
			return Result{
				Status:  types.StatusUnknown,
				Message: fmt.Sprintf("SMTP check cancelled for domain %s", domain),
			}
		default:
		}

		res := p.probeHost(ctx, host)
		p.cfg.Logger.Debug().
			Str("domain", domain).
			Str("host", host).
			Str("status", res.Status).
			Msg("smtp candidate probed")

		// Stop at the first definite network-level answer; unknown
		// means try the next candidate.
		if res.Status == types.StatusOK || res.Status == types.StatusUnreachable {
			return res
		}
	}

	return Result{
		Status:  types.StatusUnknown,
		Message: fmt.Sprintf("unable to determine SMTP status for domain %s", domain),
	}
}

// probeHost opens one SMTP session against host and classifies the
// outcome. The connection is always closed before returning.
func (p *Prober) probeHost(ctx context.Context, host string) Result {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	conn, err := p.cfg.Dial(ctx, "tcp", net.JoinHostPort(host, p.cfg.Port))
	if err != nil {
		return classifyDial(host, err)
	}
	defer conn.Close()

	// One deadline covers the whole session: greeting, NOOP, QUIT.
	_ = conn.SetDeadline(time.Now().Add(p.cfg.Timeout))

	r := bufio.NewReader(conn)
	w := bufio.NewWriter(conn)

	code, _, err := readReply(r)
	if err != nil {
		return classifySession(host, err)
	}
	if code != 220 {
		return Result{
			Status:  types.StatusUnreachable,
			Message: fmt.Sprintf("SMTP server %s rejected the connection with code %d", host, code),
		}
	}

	code, _, err = command(w, r, "NOOP")
	if err != nil {
		return classifySession(host, err)
	}

	sendQuit(w)

	msg := fmt.Sprintf("SMTP server %s responded with code %d", host, code)
	if code >= 200 && code < 400 {
		return Result{Status: types.StatusOK, Message: msg}
	}
	return Result{Status: types.StatusUnreachable, Message: msg}
}

// classifyDial maps a connection error to a probe status: a refused or
// timed-out dial is a definite non-response, an unresolvable candidate
// hostname is indeterminate.
func classifyDial(host string, err error) Result {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return unexpectedResult(host, err)
	}
	if isUnreachable(err) {
		return unreachableResult(host, err)
	}
	return unexpectedResult(host, err)
}

// classifySession maps an error raised after the connection was
// established.
func classifySession(host string, err error) Result {
	if isUnreachable(err) {
		return unreachableResult(host, err)
	}
	return unexpectedResult(host, err)
}

// isUnreachable reports whether err is a network-level non-response:
// timeout, disconnect, or refused connection.
func isUnreachable(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}

func unreachableResult(host string, err error) Result {
	return Result{
		Status:  types.StatusUnreachable,
		Message: fmt.Sprintf("SMTP server %s is unreachable or disconnected: %v", host, err),
	}
}

func unexpectedResult(host string, err error) Result {
	return Result{
		Status:  types.StatusUnknown,
		Message: fmt.Sprintf("unexpected SMTP error while connecting to %s: %v", host, err),
	}
}
