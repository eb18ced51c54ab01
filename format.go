package mailprobe

import (
	"strings"
	"unicode"

	"github.com/optimode/mailprobe/internal/parse"
)

// checkFormat applies the syntactic stage to a split address and
// returns ok=false with the failing rule's text. RFC 5321 ASCII
// specials and RFC 6531 (SMTPUTF8) Unicode are allowed in the local
// part; the domain must have at least two labels made of letters,
// digits and inner hyphens.
func checkFormat(email parse.Email) (ok bool, detail string) {
	if !email.Valid {
		return false, email.Reason
	}

	// Length caps (RFC 5321)
	if len(email.Raw) > 254 {
		return false, "address exceeds 254 characters"
	}
	if len(email.Local) > 64 {
		return false, "local part exceeds 64 characters"
	}

	if detail := validateLocal(email.Local); detail != "" {
		return false, detail
	}
	if detail := validateDomain(email.DomainUnicode); detail != "" {
		return false, detail
	}
	return true, ""
}

// validateLocal checks the local part. Returns the failing rule's
// text, or "" if ok.
func validateLocal(local string) string {
	// RFC 5321 ASCII special characters (besides alphanumeric)
	const asciiSpecial = "!#$%&'*+/=?^_`{|}~-."

	for _, ch := range local {
		if ch > 127 {
			// RFC 6531 (SMTPUTF8): non-ASCII Unicode is allowed,
			// except control characters
			if unicode.IsControl(ch) {
				return "local part contains control character"
			}
			continue
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			continue
		}
		if !strings.ContainsRune(asciiSpecial, ch) {
			return "local part contains invalid character: " + string(ch)
		}
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return "local part cannot start or end with a dot"
	}
	if strings.Contains(local, "..") {
		return "local part cannot contain consecutive dots"
	}

	return ""
}

// validateDomain checks the domain part (Unicode form; IDNA2008
// validation already happened during parsing). Returns the failing
// rule's text, or "" if ok.
func validateDomain(domain string) string {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return "domain must contain at least one dot"
	}

	for _, label := range labels {
		if label == "" {
			return "domain contains an empty label"
		}
		if len(label) > 63 {
			return "domain label exceeds 63 characters"
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "domain label cannot start or end with a hyphen"
		}
		for _, ch := range label {
			if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '-' {
				return "domain label contains invalid character: " + string(ch)
			}
		}
	}

	// TLD cannot be all digits
	tld := labels[len(labels)-1]
	allDigits := true
	for _, ch := range tld {
		if !unicode.IsDigit(ch) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "top-level domain cannot be all digits"
	}

	return ""
}
