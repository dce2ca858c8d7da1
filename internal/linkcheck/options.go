package linkcheck

import "time"

// Options tunes the link checker. Zero values fall back to the defaults
// below.
type Options struct {
	MaxConcurrent   int
	RequestTimeout  time.Duration
	RateLimitDelay  time.Duration
	FollowRedirects bool
	MaxRedirects    int

	// NATS-backed result cache and broken-link publishing. Disabled when
	// NATSURL is empty.
	NATSURL          string
	Subject          string
	KVBucket         string
	CacheTTL         time.Duration
	CacheTTLFailures time.Duration
}

// withDefaults returns a copy with unset fields filled in.
func (o Options) withDefaults() Options {
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = 10
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.RateLimitDelay < 0 {
		o.RateLimitDelay = 0
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = 3
	}
	if o.Subject == "" {
		o.Subject = "siteconf.links.broken"
	}
	if o.KVBucket == "" {
		o.KVBucket = "siteconf-link-cache"
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = 24 * time.Hour
	}
	if o.CacheTTLFailures <= 0 {
		o.CacheTTLFailures = time.Hour
	}
	return o
}
