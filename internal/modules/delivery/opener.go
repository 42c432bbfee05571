package delivery

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Opener launches URIs on the customer's device.
type Opener interface {
	CanOpen(ctx context.Context, uri string) bool
	Open(ctx context.Context, uri string) error
}

// DefaultSchemes are assumed when a client declares none.
var DefaultSchemes = []string{"https", "mailto"}

// LinkCollector records links for a client that declared which schemes it
// handles; the client opens them in order once the response arrives.
type LinkCollector struct {
	schemes map[string]bool

	mu    sync.Mutex
	links []string
}

func NewLinkCollector(schemes ...string) *LinkCollector {
	if len(schemes) == 0 {
		schemes = DefaultSchemes
	}
	set := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ":"))
		if s != "" {
			set[s] = true
		}
	}
	return &LinkCollector{schemes: set}
}

func (c *LinkCollector) CanOpen(_ context.Context, uri string) bool {
	return c.schemes[scheme(uri)]
}

func (c *LinkCollector) Open(ctx context.Context, uri string) error {
	if !c.CanOpen(ctx, uri) {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme(uri))
	}
	c.mu.Lock()
	c.links = append(c.links, uri)
	c.mu.Unlock()
	return nil
}

func (c *LinkCollector) Links() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.links))
	copy(out, c.links)
	return out
}
