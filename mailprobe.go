// Package mailprobe validates email addresses in three stages: a
// syntactic format check, resolution of the domain's mail path, and an
// SMTP reachability probe of the domain's mail servers.
//
// Basic usage:
//
//	v := mailprobe.New()
//	verdict := v.Verify(ctx, "user@example.com")
//
// Custom timeouts and a batch:
//
//	v := mailprobe.New(mailprobe.Options{
//	    DNSTimeout:  3 * time.Second,
//	    SMTPTimeout: 10 * time.Second,
//	})
//	verdicts := v.VerifyMany(ctx, emails, mailprobe.BatchOptions{Workers: 4})
//
// The probe never submits mail: it connects, issues a single NOOP, and
// disconnects. Every failure is downgraded to a classification in the
// returned Verdict; Verify never returns an error and never panics.
package mailprobe

import "github.com/optimode/mailprobe/types"

// Status values re-exported from the types package so that consumers
// don't need to import it directly.
const (
	StatusOK          = types.StatusOK
	StatusValid       = types.StatusValid
	StatusInvalid     = types.StatusInvalid
	StatusUnreachable = types.StatusUnreachable
	StatusUnknown     = types.StatusUnknown
)

// Resolution method tags re-exported.
const (
	MethodMX   = types.MethodMX
	MethodHost = types.MethodHost
	MethodNone = types.MethodNone
)
