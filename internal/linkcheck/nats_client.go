package linkcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSClient manages the NATS connection used for the link result cache and
// broken-link event publishing.
type NATSClient struct {
	conn *nats.Conn
	js   jetstream.JetStream
	kv   jetstream.KeyValue
	opts Options
}

// NewNATSClient connects to NATS and ensures the KV bucket exists.
func NewNATSClient(opts Options) (*NATSClient, error) {
	if opts.NATSURL == "" {
		return nil, errors.New("NATS cache is disabled")
	}

	conn, err := nats.Connect(opts.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &NATSClient{conn: conn, js: js, opts: opts}
	if err := client.initKVBucket(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize KV bucket: %w", err)
	}

	slog.Info("NATS client initialized for link checking",
		"url", opts.NATSURL, "subject", opts.Subject, "kv_bucket", opts.KVBucket)
	return client, nil
}

func (c *NATSClient) initKVBucket() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, err := c.js.KeyValue(ctx, c.opts.KVBucket)
	if err == nil {
		c.kv = kv
		return nil
	}

	kv, err = c.js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      c.opts.KVBucket,
		Description: "Link verification cache for siteconf",
		MaxBytes:    10 * 1024 * 1024,
		History:     1,
	})
	if err != nil {
		return fmt.Errorf("failed to create KV bucket: %w", err)
	}
	c.kv = kv
	return nil
}

// CacheEntry is a cached link verification result.
type CacheEntry struct {
	URL         string    `json:"url"`
	Status      int       `json:"status"`
	IsValid     bool      `json:"is_valid"`
	Error       string    `json:"error,omitempty"`
	LastChecked time.Time `json:"last_checked"`
}

// GetCachedResult retrieves a cached result, nil when absent.
func (c *NATSClient) GetCachedResult(ctx context.Context, url string) (*CacheEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	entry, err := c.kv.Get(ctx, cacheKey(url))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	var cached CacheEntry
	if err := json.Unmarshal(entry.Value(), &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	return &cached, nil
}

// SetCachedResult stores a verification result.
func (c *NATSClient) SetCachedResult(ctx context.Context, entry *CacheEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	entry.LastChecked = time.Now()
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if _, err := c.kv.Put(ctx, cacheKey(entry.URL), data); err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}
	return nil
}

// IsCacheValid reports whether an entry is still fresh. Failures expire
// sooner so transient outages are retried.
func (c *NATSClient) IsCacheValid(entry *CacheEntry) bool {
	if entry == nil {
		return false
	}
	ttl := c.opts.CacheTTL
	if !entry.IsValid {
		ttl = c.opts.CacheTTLFailures
	}
	return time.Since(entry.LastChecked) < ttl
}

// PublishBrokenLink publishes a broken link event.
func (c *NATSClient) PublishBrokenLink(ctx context.Context, event *BrokenLinkEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event.Timestamp = time.Now()
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := c.js.Publish(ctx, c.opts.Subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	slog.Debug("Published broken link event", "url", event.URL, "source", event.Source)
	return nil
}

// Close closes the NATS connection.
func (c *NATSClient) Close() error {
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// cacheKey flattens a URL into a NATS KV compatible key.
func cacheKey(url string) string {
	out := make([]byte, 0, len(url))
	for i := 0; i < len(url); i++ {
		b := url[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '-', b == '_':
			out = append(out, b)
		default:
			out = append(out, '.')
		}
	}
	return string(out)
}
