package mailprobe

import "github.com/optimode/mailprobe/internal/levenshtein"

// knownProviders are major email providers used for typo hints when a
// domain fails to resolve. Matching runs on the Unicode domain form.
var knownProviders = []string{
	"gmail.com", "googlemail.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de",
	"outlook.com", "hotmail.com", "hotmail.co.uk", "live.com",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "proton.me",
	"aol.com",
	"zoho.com",
	"yandex.com", "yandex.ru",
	"mail.com",
	"gmx.com", "gmx.net", "gmx.de",
	"fastmail.com",
	"tutanota.com",
}

// suggestionThreshold is the maximum edit distance for a typo hint.
const suggestionThreshold = 2

// suggestDomain returns the known provider closest to domain. An exact
// provider match yields no suggestion: the domain is not a typo, the
// lookup failed for some other reason.
func suggestDomain(domain string) (string, bool) {
	best := ""
	bestDist := suggestionThreshold + 1
	for _, provider := range knownProviders {
		if domain == provider {
			return "", false
		}
		if d, ok := levenshtein.DistanceWithin(domain, provider, suggestionThreshold); ok && d < bestDist {
			bestDist = d
			best = provider
		}
	}
	return best, best != ""
}
