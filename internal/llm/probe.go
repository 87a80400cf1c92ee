package llm

import (
	"context"
	"log"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	gocache "github.com/patrickmn/go-cache"
)

const probeCacheKey = "probe"

// Probe checks that the model API is reachable with the configured key. The
// result is cached so the wizard can gate its intake action on every page
// load without burning a request each time: a positive result holds for five
// minutes, a negative one for thirty seconds.
type Probe struct {
	client  *Client
	results *gocache.Cache
}

func NewProbe(client *Client) *Probe {
	return &Probe{
		client:  client,
		results: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (p *Probe) Reachable(ctx context.Context) bool {
	if v, ok := p.results.Get(probeCacheKey); ok {
		return v.(bool)
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	_, err := p.client.Generate(ctx, "probe", Request{
		Blocks:    []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock("ping")},
		MaxTokens: 1,
	})
	if err != nil {
		log.Printf("connectivity probe failed: %v", err)
		p.results.Set(probeCacheKey, false, 30*time.Second)
		return false
	}
	p.results.Set(probeCacheKey, true, gocache.DefaultExpiration)
	return true
}
