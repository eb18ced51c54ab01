package resolve

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/optimode/mailprobe/types"
)

// mxResolver is the primary implementation, backed by MX record queries.
type mxResolver struct {
	cfg Config
}

func (r *mxResolver) Lookup(ctx context.Context, domain string) Result {
	domain = normalize(domain)
	if domain == "" {
		return Result{Status: types.StatusInvalid, Message: "domain is empty", Method: types.MethodNone}
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	hosts, err := r.MXHosts(ctx, domain)
	if err != nil {
		// A failed query is a definite answer for this domain; the
		// host fallback substitutes for a missing capability, never
		// for a failed query.
		return Result{
			Status:  types.StatusInvalid,
			Message: fmt.Sprintf("MX lookup failed: %v", err),
			Method:  types.MethodMX,
		}
	}
	if len(hosts) == 0 {
		return Result{Status: types.StatusInvalid, Message: "no MX records found", Method: types.MethodMX}
	}

	r.cfg.Logger.Debug().Str("domain", domain).Int("hosts", len(hosts)).Msg("mx records found")
	return Result{
		Status:  types.StatusOK,
		Message: "MX records found",
		MXHosts: hosts,
		Method:  types.MethodMX,
	}
}

// MXHosts performs the raw MX query, returning exchange hostnames in
// preference order with trailing root-label dots stripped. Null MX
// exchanges (RFC 7505 ".") are dropped.
func (r *mxResolver) MXHosts(ctx context.Context, domain string) ([]string, error) {
	records, err := r.cfg.LookupMX(ctx, domain)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Pref < records[j].Pref
	})

	hosts := make([]string, 0, len(records))
	for _, mx := range records {
		host := strings.TrimSuffix(mx.Host, ".")
		if host == "" {
			continue
		}
		hosts = append(hosts, host)
	}
	return hosts, nil
}
