package mailprobe

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/optimode/mailprobe/internal/parse"
	"github.com/optimode/mailprobe/probe"
	"github.com/optimode/mailprobe/resolve"
	"github.com/optimode/mailprobe/types"
)

// DomainResolver decides whether a domain has a deliverable mail path.
// resolve.New provides the standard implementations.
type DomainResolver interface {
	Lookup(ctx context.Context, domain string) resolve.Result
}

// SMTPProber checks whether a mail server is reachable for a domain.
// probe.New provides the standard implementation.
type SMTPProber interface {
	Check(ctx context.Context, domain string) probe.Result
}

// Verifier runs the three validation stages and merges their answers
// into one Verdict per address. Instantiate with New. A Verifier holds
// no per-address state and is safe for concurrent use.
type Verifier struct {
	opts     Options
	resolver DomainResolver
	prober   SMTPProber
}

// New creates a Verifier with the standard resolver and prober wired
// together: the prober reuses the resolver's MX capability for its
// candidate hosts.
func New(opts ...Options) *Verifier {
	o := Options{}
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.normalized()

	r := resolve.New(resolve.Config{
		Timeout:  o.DNSTimeout,
		HostOnly: o.HostOnly,
		Logger:   o.Logger.With().Str("component", "resolve").Logger(),
	})
	p := probe.New(probe.Config{
		Timeout: o.SMTPTimeout,
		Port:    o.SMTPPort,
		Source:  r,
		Logger:  o.Logger.With().Str("component", "probe").Logger(),
	})

	return &Verifier{opts: o, resolver: r, prober: p}
}

// NewWithComponents is a test-oriented constructor that overrides the
// resolver and prober.
func NewWithComponents(r DomainResolver, p SMTPProber, opts ...Options) *Verifier {
	v := New(opts...)
	v.resolver = r
	v.prober = p
	return v
}

// Verify validates one address. The returned Verdict is always fully
// populated; failures of every kind are classifications, not errors.
// An internal fault is recovered and reported as an unknown verdict so
// that one bad address can never abort a batch.
func (v *Verifier) Verify(ctx context.Context, email string) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v.opts.Logger.Error().
				Str("email", strings.TrimSpace(email)).
				Interface("panic", r).
				Msg("validation failed unexpectedly")
			verdict = Verdict{
				Email:         strings.TrimSpace(email),
				EmailStatus:   types.StatusUnknown,
				Message:       fmt.Sprintf("internal error during validation: %v", r),
				Format:        types.StatusUnknown,
				MailboxStatus: types.StatusUnknown,
				MailboxType:   types.StatusUnknown,
			}
		}
	}()

	parsed := parse.NewEmail(email)
	verdict = Verdict{
		Email:       parsed.Raw,
		MailboxType: types.StatusUnknown,
		Domain:      parsed.Domain,
	}

	// Format stage: failure short-circuits before any network call.
	if ok, detail := checkFormat(parsed); !ok {
		verdict.EmailStatus = types.StatusInvalid
		verdict.Format = types.StatusInvalid
		verdict.MailboxStatus = types.StatusUnknown
		verdict.Message = detail
		return verdict
	}
	verdict.Format = types.StatusValid

	// Domain stage: no reachable domain means no reachable mailbox, so
	// the SMTP stage is skipped.
	lookup := v.resolver.Lookup(ctx, parsed.Domain)
	if lookup.Status != types.StatusOK {
		verdict.EmailStatus = types.StatusInvalid
		verdict.MailboxStatus = types.StatusInvalid
		verdict.Message = lookup.Message
		if s, ok := suggestDomain(parsed.DomainUnicode); ok {
			v.opts.Logger.Debug().
				Str("domain", parsed.DomainUnicode).
				Str("suggestion", s).
				Msg("failed domain resembles a known provider")
			verdict.Message = fmt.Sprintf("%s (did you mean %s@%s?)", lookup.Message, parsed.Local, s)
		}
		return verdict
	}

	// Mailbox stage.
	probed := v.prober.Check(ctx, parsed.Domain)
	verdict.MailboxStatus = probed.Status
	verdict.Message = probed.Message
	switch probed.Status {
	case types.StatusOK:
		verdict.EmailStatus = types.StatusValid
	case types.StatusUnknown:
		verdict.EmailStatus = types.StatusUnknown
	default:
		verdict.EmailStatus = types.StatusInvalid
	}
	return verdict
}

// VerifyMany validates a batch. The returned slice matches the input
// order: each job carries its input index and writes its verdict to
// that slot. Workers defaults to 1, which keeps validation strictly
// sequential; raise BatchOptions.Workers for bounded parallelism
// across addresses.
func (v *Verifier) VerifyMany(ctx context.Context, emails []string, opts ...BatchOptions) []Verdict {
	workers := 1
	if len(opts) > 0 && opts[0].Workers > 0 {
		workers = opts[0].Workers
	}
	if workers > len(emails) {
		workers = len(emails)
	}

	verdicts := make([]Verdict, len(emails))
	if len(emails) == 0 {
		return verdicts
	}

	if workers <= 1 {
		for i, e := range emails {
			verdicts[i] = v.Verify(ctx, e)
		}
		return verdicts
	}

	type job struct {
		idx   int
		email string
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				verdicts[j.idx] = v.Verify(ctx, j.email)
			}
		}()
	}

	for i, e := range emails {
		jobs <- job{idx: i, email: e}
	}
	close(jobs)
	wg.Wait()

	return verdicts
}
