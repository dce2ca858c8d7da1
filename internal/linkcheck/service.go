package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/logfields"
)

// Target is a link selected for verification.
type Target struct {
	Label  string
	URL    string
	Source string // "links", "social", or a content file path
}

// Result is the outcome of verifying a single target.
type Result struct {
	Target     Target
	StatusCode int
	OK         bool
	Cached     bool
	Error      string
	Duration   time.Duration
}

// cacheClient abstracts the NATS-backed cache so the service can run without
// a broker and tests can substitute a fake.
type cacheClient interface {
	GetCachedResult(ctx context.Context, url string) (*CacheEntry, error)
	SetCachedResult(ctx context.Context, entry *CacheEntry) error
	IsCacheValid(entry *CacheEntry) bool
	PublishBrokenLink(ctx context.Context, event *BrokenLinkEvent) error
	Close() error
}

// Service verifies links with bounded concurrency.
type Service struct {
	opts       Options
	httpClient *http.Client
	cache      cacheClient // nil when NATS is not configured
	sem        chan struct{}

	mu      sync.Mutex
	running bool
}

// NewService creates a link check service. When opts.NATSURL is set, results
// are cached and broken links published via NATS.
func NewService(opts Options) (*Service, error) {
	opts = opts.withDefaults()

	var cache cacheClient
	if opts.NATSURL != "" {
		nc, err := NewNATSClient(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS client: %w", err)
		}
		cache = nc
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{
		Timeout:   opts.RequestTimeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if !opts.FollowRedirects {
				return http.ErrUseLastResponse
			}
			if len(via) >= opts.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", opts.MaxRedirects)
			}
			return nil
		},
	}

	return &Service{
		opts:       opts,
		httpClient: httpClient,
		cache:      cache,
		sem:        make(chan struct{}, opts.MaxConcurrent),
	}, nil
}

// TargetsFromConfig selects the navigation and social entries worth
// verifying; "#" placeholders are skipped.
func TargetsFromConfig(cfg *config.SiteConfig) []Target {
	var targets []Target
	for _, l := range cfg.Links {
		if l.IsPlaceholder() {
			continue
		}
		targets = append(targets, Target{Label: l.Label, URL: l.URL, Source: "links"})
	}
	for _, l := range cfg.Social {
		if l.IsPlaceholder() {
			continue
		}
		targets = append(targets, Target{Label: l.Label, URL: l.URL, Source: "social"})
	}
	return targets
}

// Check verifies all targets and returns a result per target, in input order.
func (s *Service) Check(ctx context.Context, targets []Target) ([]Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, errors.New("link check already running")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	slog.Info("Starting link check", logfields.Count(len(targets)))

	results := make([]Result, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		if s.opts.RateLimitDelay > 0 {
			time.Sleep(s.opts.RateLimitDelay)
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return results, ctx.Err()
		case s.sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			defer func() { <-s.sem }()
			results[i] = s.checkOne(ctx, target)
		}(i, target)
	}
	wg.Wait()

	broken := 0
	for _, r := range results {
		if !r.OK {
			broken++
		}
	}
	slog.Info("Link check complete", logfields.Count(len(results)), slog.Int("broken", broken))
	return results, nil
}

func (s *Service) checkOne(ctx context.Context, target Target) Result {
	if s.cache != nil {
		if entry, err := s.cache.GetCachedResult(ctx, target.URL); err == nil && s.cache.IsCacheValid(entry) {
			return Result{
				Target:     target,
				StatusCode: entry.Status,
				OK:         entry.IsValid,
				Cached:     true,
				Error:      entry.Error,
			}
		}
	}

	start := time.Now()
	status, err := s.probe(ctx, target.URL)
	result := Result{
		Target:     target,
		StatusCode: status,
		OK:         err == nil && status < 400,
		Duration:   time.Since(start),
	}
	if err != nil {
		result.Error = err.Error()
	} else if status >= 400 {
		result.Error = http.StatusText(status)
	}

	if s.cache != nil {
		entry := &CacheEntry{URL: target.URL, Status: status, IsValid: result.OK, Error: result.Error}
		if cerr := s.cache.SetCachedResult(ctx, entry); cerr != nil {
			slog.Debug("Failed to cache link result", logfields.URL(target.URL), logfields.Error(cerr))
		}
		if !result.OK {
			event := &BrokenLinkEvent{
				URL:        target.URL,
				Label:      target.Label,
				Source:     target.Source,
				StatusCode: status,
				Error:      result.Error,
			}
			if perr := s.cache.PublishBrokenLink(ctx, event); perr != nil {
				slog.Debug("Failed to publish broken link", logfields.URL(target.URL), logfields.Error(perr))
			}
		}
	}

	if !result.OK {
		slog.Warn("Broken link", logfields.URL(target.URL), logfields.Label(target.Label),
			slog.String("source", target.Source), slog.Int("status", status))
	}
	return result
}

// probe issues a HEAD request, falling back to GET for servers that refuse
// HEAD.
func (s *Service) probe(ctx context.Context, url string) (int, error) {
	status, err := s.request(ctx, http.MethodHead, url)
	if err == nil && status != http.StatusMethodNotAllowed && status != http.StatusForbidden {
		return status, nil
	}
	return s.request(ctx, http.MethodGet, url)
}

func (s *Service) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "siteconf-linkcheck/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.StatusCode, nil
}

// Close releases the cache connection, if any.
func (s *Service) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}
