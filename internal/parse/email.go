package parse

import (
	"strings"

	"golang.org/x/net/idna"
)

// Email is the internal representation of a split email address.
// The validation stages receive this as parameter.
type Email struct {
	Raw           string // the original, trimmed input
	Local         string // the part before @
	Domain        string // the part after @, ASCII/Punycode form (for DNS/SMTP)
	DomainUnicode string // the part after @, Unicode form (for display)
	Valid         bool   // false if Raw cannot be split into local@domain
	Reason        string // why Valid is false, empty otherwise
}

// NewEmail splits the given address into its local part and domain.
// The address must contain exactly one @ with a non-empty part on each
// side; display names and quoted local parts are not supported. If
// splitting fails, Valid=false and Reason says why, but Raw is always
// populated. The domain is lower-cased; local part case is preserved.
// Internationalized domain names (IDNA2008) are converted to their
// ASCII/Punycode form for the network stages.
func NewEmail(raw string) Email {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return invalid(raw, "address is empty")
	}

	switch strings.Count(raw, "@") {
	case 1:
	case 0:
		return invalid(raw, "address must contain an @")
	default:
		return invalid(raw, "address must contain exactly one @")
	}

	at := strings.IndexByte(raw, '@')
	local, domain := raw[:at], raw[at+1:]
	if local == "" {
		return invalid(raw, "local part is empty")
	}
	if domain == "" {
		return invalid(raw, "domain is empty")
	}

	ascii, unicode, ok := convertDomain(strings.ToLower(domain))
	if !ok {
		return invalid(raw, "domain is not a valid internationalized domain name")
	}

	return Email{
		Raw:           raw,
		Local:         local,
		Domain:        ascii,
		DomainUnicode: unicode,
		Valid:         true,
	}
}

func invalid(raw, reason string) Email {
	return Email{Raw: raw, Valid: false, Reason: reason}
}

// convertDomain converts a domain to both ASCII/Punycode and Unicode forms.
// Returns (ascii, unicode, ok). ok is false if the domain contains
// non-ASCII characters that fail IDNA2008 validation.
func convertDomain(domain string) (ascii, unicode string, ok bool) {
	hasNonASCII := false
	for _, r := range domain {
		if r > 127 {
			hasNonASCII = true
			break
		}
	}

	if hasNonASCII {
		a, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return "", "", false
		}
		return a, domain, true
	}

	// Pure ASCII domain: recover the Unicode display form in case the
	// input was already Punycode (xn--mnchen-3ya.de → münchen.de).
	u, err := idna.Display.ToUnicode(domain)
	if err != nil {
		u = domain
	}
	return domain, u, true
}
