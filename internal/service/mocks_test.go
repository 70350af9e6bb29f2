package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lunalearn/luna-api/internal/present"
)

// stubGenerator returns canned responses keyed by a substring of the
// prompt, falling back to a default. It records every prompt it sees.
type stubGenerator struct {
	mu        sync.Mutex
	byKeyword map[string]stubReply
	fallback  stubReply
	prompts   []string
}

type stubReply struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	for keyword, reply := range g.byKeyword {
		if strings.Contains(prompt, keyword) {
			return reply.text, reply.err
		}
	}
	return g.fallback.text, g.fallback.err
}

func (g *stubGenerator) promptCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// blockingGenerator serves slide prompts immediately but holds resource
// prompts until the gate channel closes, so tests can interleave a second
// generation before the first one's resources land.
type blockingGenerator struct {
	slides    string
	resources string
	gate      chan struct{}
}

func (g *blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "Further Reading") {
		<-g.gate
		return g.resources, nil
	}
	return g.slides, nil
}

// manualClock collects AfterFunc callbacks so tests drive auto-advance
// explicitly.
type manualClock struct {
	mu    sync.Mutex
	funcs []func()
}

type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func (c *manualClock) AfterFunc(d time.Duration, f func()) present.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
	return manualTimer{}
}

func (c *manualClock) fire() {
	c.mu.Lock()
	pending := c.funcs
	c.funcs = nil
	c.mu.Unlock()
	for _, f := range pending {
		f()
	}
}
