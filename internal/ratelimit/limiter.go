package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// EndpointLimiter throttles calls per upstream endpoint so a burst of
// dashboard searches cannot exhaust the provider quota.
type EndpointLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewEndpointLimiter(config RateLimitConfig) *EndpointLimiter {
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewEndpointLimiterWithDefaults() *EndpointLimiter {
	return NewEndpointLimiter(DefaultConfig())
}

func (p *EndpointLimiter) GetLimiter(endpoint string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[endpoint]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[endpoint] = limiter
	return limiter
}

func (p *EndpointLimiter) SetEndpointLimit(endpoint string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (p *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return p.GetLimiter(endpoint).Wait(ctx)
}
