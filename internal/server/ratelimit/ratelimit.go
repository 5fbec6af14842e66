// Package ratelimit provides per-client request rate limiting.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Rate            float64 // requests per second per client
	Burst           int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // buckets unused this long are dropped
	EndpointConfigs []EndpointConfig
}

// EndpointConfig overrides the default limit for one endpoint.
type EndpointConfig struct {
	Path   string  // path pattern, e.g. "/scores/{requirement_id}"
	Method string  // HTTP method (GET, POST, etc.)
	Rate   float64 // requests per second; 0 means unlimited
	Burst  int     // Burst capacity (defaults to 1 if 0)
}

// NewConfig returns a configuration allowing ratePerSecond requests per client
// with the given burst. A non-positive rate disables limiting.
func NewConfig(ratePerSecond float64, burst int) *Config {
	if ratePerSecond <= 0 {
		return &Config{Enabled: false}
	}
	if burst <= 0 {
		burst = int(math.Ceil(ratePerSecond))
	}
	return &Config{
		Enabled:         true,
		Rate:            ratePerSecond,
		Burst:           burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(ratePerSecond, burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations. Health
// checks are unlimited; batch ranking scores many candidates per request and
// gets a quarter of the budget.
func DefaultEndpointConfigs(ratePerSecond float64, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/health", Method: "GET", Rate: 0},
		{Path: "/rank", Method: "POST", Rate: ratePerSecond / 4, Burst: max(1, burst/4)},
	}
}

type client struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	clients       map[string]*client // Client ID + endpoint -> limiter
	mu            sync.Mutex
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	now           func() time.Time
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = NewConfig(10, 20)
	}

	limiter := &Limiter{
		clients: make(map[string]*client),
		config:  config,
		now:     time.Now,
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	key := clientID + ":*"
	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{Rate: l.config.Rate, Burst: l.config.Burst}
	} else {
		key = clientID + ":" + endpointConfig.Method + " " + endpointConfig.Path
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Rate <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.limiterFor(key, endpointConfig, now)

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     lim.Burst(),
		Remaining: max(0, int(tokens)),
		ResetTime: now.Add(secondsFor(float64(lim.Burst())-tokens, endpointConfig.Rate)),
	}
	if !allowed {
		info.RetryAfter = secondsFor(1-tokens, endpointConfig.Rate)
	}
	return allowed, info
}

func secondsFor(tokens, ratePerSecond float64) time.Duration {
	if tokens <= 0 {
		return 0
	}
	return time.Duration(tokens / ratePerSecond * float64(time.Second))
}

func (l *Limiter) limiterFor(key string, cfg *EndpointConfig, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c = &client{limiter: rate.NewLimiter(rate.Limit(cfg.Rate), burst)}
		l.clients[key] = c
	}
	c.lastAccess = now
	return c.limiter
}

// cleanup removes old unused limiters to prevent memory leaks.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupClients()
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) cleanupClients() {
	idle := l.config.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if c.lastAccess.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
		l.cleanupStop = nil
	}
}
