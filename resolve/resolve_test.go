package resolve_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/mailprobe/resolve"
	"github.com/optimode/mailprobe/types"
)

// counters tracks how often each injected lookup function ran.
type counters struct {
	mx   int
	host int
}

func newMXResolver(c *counters, records []*net.MX, err error) resolve.Resolver {
	return resolve.New(resolve.Config{
		Timeout: 2 * time.Second,
		LookupMX: func(_ context.Context, _ string) ([]*net.MX, error) {
			c.mx++
			return records, err
		},
		LookupHost: func(_ context.Context, _ string) ([]string, error) {
			c.host++
			return []string{"192.0.2.1"}, nil
		},
	})
}

func newHostResolver(c *counters, addrs []string, err error) resolve.Resolver {
	return resolve.New(resolve.Config{
		Timeout:  2 * time.Second,
		HostOnly: true,
		LookupMX: func(_ context.Context, _ string) ([]*net.MX, error) {
			c.mx++
			return nil, errors.New("must not be called")
		},
		LookupHost: func(_ context.Context, _ string) ([]string, error) {
			c.host++
			return addrs, err
		},
	})
}

func TestLookup_MXRecordsFound(t *testing.T) {
	var c counters
	r := resolve.New(resolve.Config{
		Timeout: 2 * time.Second,
		LookupMX: func(_ context.Context, domain string) ([]*net.MX, error) {
			c.mx++
			assert.Equal(t, "example.com", domain, "domain is trimmed and lower-cased before lookup")
			return []*net.MX{
				{Host: "backup.example.com.", Pref: 20},
				{Host: "primary.example.com.", Pref: 10},
			}, nil
		},
	})

	res := r.Lookup(context.Background(), "  EXAMPLE.com ")

	assert.Equal(t, types.StatusOK, res.Status)
	assert.Equal(t, types.MethodMX, res.Method)
	assert.Equal(t, "MX records found", res.Message)
	assert.Equal(t, []string{"primary.example.com", "backup.example.com"}, res.MXHosts,
		"hosts ordered by preference, trailing dots stripped")
	assert.Equal(t, 1, c.mx)
}

func TestLookup_NoMXRecords(t *testing.T) {
	var c counters
	r := newMXResolver(&c, []*net.MX{}, nil)

	res := r.Lookup(context.Background(), "example.com")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Equal(t, types.MethodMX, res.Method)
	assert.Equal(t, "no MX records found", res.Message)
	assert.Empty(t, res.MXHosts)
}

func TestLookup_NullMXDropped(t *testing.T) {
	var c counters
	r := newMXResolver(&c, []*net.MX{{Host: ".", Pref: 0}}, nil)

	res := r.Lookup(context.Background(), "nomail.example.com")

	assert.Equal(t, types.StatusInvalid, res.Status, "a lone null MX advertises no mail path")
	assert.Empty(t, res.MXHosts)
}

func TestLookup_MXErrorDoesNotFallBack(t *testing.T) {
	var c counters
	r := newMXResolver(&c, nil, &net.DNSError{Err: "no such host", Name: "example.com"})

	res := r.Lookup(context.Background(), "example.com")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Equal(t, types.MethodMX, res.Method)
	assert.Contains(t, res.Message, "MX lookup failed")
	assert.Equal(t, 1, c.mx)
	assert.Zero(t, c.host, "a failed query is an answer, not a missing capability")
}

func TestLookup_EmptyDomain(t *testing.T) {
	var c counters
	r := newMXResolver(&c, nil, nil)

	for _, domain := range []string{"", "   "} {
		res := r.Lookup(context.Background(), domain)

		assert.Equal(t, types.StatusInvalid, res.Status)
		assert.Equal(t, types.MethodNone, res.Method)
		assert.Equal(t, "domain is empty", res.Message)
		assert.Empty(t, res.MXHosts)
	}
	assert.Zero(t, c.mx, "empty domains must not hit the network")
	assert.Zero(t, c.host)
}

func TestLookup_HostOnlyResolves(t *testing.T) {
	var c counters
	r := newHostResolver(&c, []string{"192.0.2.1", "2001:db8::1"}, nil)

	res := r.Lookup(context.Background(), "example.com")

	assert.Equal(t, types.StatusOK, res.Status)
	assert.Equal(t, types.MethodHost, res.Method)
	assert.Empty(t, res.MXHosts, "host resolution yields no MX hosts")
	assert.Equal(t, 1, c.host)
	assert.Zero(t, c.mx)
}

func TestLookup_HostOnlyNameError(t *testing.T) {
	var c counters
	r := newHostResolver(&c, nil, &net.DNSError{Err: "no such host", Name: "gone.invalid", IsNotFound: true})

	res := r.Lookup(context.Background(), "gone.invalid")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Equal(t, types.MethodHost, res.Method)
	assert.Contains(t, res.Message, "domain does not resolve")
}

func TestLookup_HostOnlyUnexpectedError(t *testing.T) {
	var c counters
	r := newHostResolver(&c, nil, errors.New("resolver exploded"))

	res := r.Lookup(context.Background(), "example.com")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Equal(t, types.MethodHost, res.Method)
	assert.Contains(t, res.Message, "unexpected DNS error")
}

func TestLookup_HostOnlyNoAddresses(t *testing.T) {
	var c counters
	r := newHostResolver(&c, []string{}, nil)

	res := r.Lookup(context.Background(), "example.com")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Contains(t, res.Message, "domain does not resolve")
}

func TestLookup_HostOnlyEmptyDomain(t *testing.T) {
	var c counters
	r := newHostResolver(&c, nil, nil)

	res := r.Lookup(context.Background(), "")

	assert.Equal(t, types.StatusInvalid, res.Status)
	assert.Equal(t, types.MethodNone, res.Method)
	assert.Zero(t, c.host)
}

func TestMXHosts_PreferenceOrderAndTrimming(t *testing.T) {
	var c counters
	r := newMXResolver(&c, []*net.MX{
		{Host: "c.example.com.", Pref: 30},
		{Host: ".", Pref: 5},
		{Host: "a.example.com.", Pref: 10},
		{Host: "b.example.com", Pref: 20},
	}, nil)

	hosts, err := r.MXHosts(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.example.com", "b.example.com", "c.example.com"}, hosts)
}

func TestMXHosts_ErrorPropagates(t *testing.T) {
	var c counters
	wantErr := &net.DNSError{Err: "server misbehaving", Name: "example.com", IsTemporary: true}
	r := newMXResolver(&c, nil, wantErr)

	_, err := r.MXHosts(context.Background(), "example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestMXHosts_HostOnlyHasNoCapability(t *testing.T) {
	var c counters
	r := newHostResolver(&c, nil, nil)

	hosts, err := r.MXHosts(context.Background(), "example.com")

	assert.NoError(t, err)
	assert.Nil(t, hosts)
	assert.Zero(t, c.host, "the host implementation reports no MX capability without a lookup")
}
