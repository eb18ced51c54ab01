package probe

import "context"

// GuessHosts returns heuristic SMTP candidates for a domain in the
// fixed order they must be probed: the conventional mail. and mx.
// subdomains, then the domain itself.
func GuessHosts(domain string) []string {
	return []string{"mail." + domain, "mx." + domain, domain}
}

// candidates derives the hosts to probe: MX-derived when the source
// yields any, guessed otherwise. Source failures degrade to guessing
// and are surfaced only as a debug diagnostic, never propagated.
func (p *Prober) candidates(ctx context.Context, domain string) []string {
	if p.cfg.Source != nil {
		ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()

		hosts, err := p.cfg.Source.MXHosts(ctx, domain)
		if err != nil {
			p.cfg.Logger.Debug().
				Err(err).
				Str("domain", domain).
				Msg("mx candidate lookup failed, falling back to guessed hosts")
		}
		if len(hosts) > 0 {
			return hosts
		}
	}
	return GuessHosts(domain)
}
