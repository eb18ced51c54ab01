package mailprobe

import "github.com/optimode/mailprobe/types"

// Verdict is the full outcome of validating one address. One Verdict
// is produced per input address and never modified after being
// returned. The JSON field names are the persisted report schema.
type Verdict struct {
	// Email is the trimmed input address.
	Email string `json:"email"`
	// EmailStatus is the overall classification: valid, invalid or
	// unknown.
	EmailStatus types.Status `json:"email_status"`
	// Message explains the outcome of the deciding stage.
	Message string `json:"message"`
	// Format reports the syntactic stage: valid, invalid or unknown.
	Format types.Status `json:"format"`
	// MailboxStatus reports the network stages: ok, invalid,
	// unreachable or unknown.
	MailboxStatus types.Status `json:"mailbox_status"`
	// MailboxType is reserved and always "unknown": the system makes
	// no attempt to distinguish disposable, role-based or catch-all
	// addresses.
	MailboxType types.Status `json:"mailbox_type"`
	// Domain is the address's domain part in ASCII form, or "" when it
	// could not be extracted.
	Domain string `json:"domain"`
}

// IsValid reports whether the address passed every stage.
func (v Verdict) IsValid() bool {
	return v.EmailStatus == types.StatusValid
}

// Conclusive reports whether the verdict is a definite answer rather
// than an unknown.
func (v Verdict) Conclusive() bool {
	return v.EmailStatus != types.StatusUnknown
}
