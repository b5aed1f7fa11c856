package styled

import (
	"sync"

	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
)

// Globals holds the container variants shared by all components resolved
// against it. Each registration replaces the previous set entirely.
type Globals struct {
	mu      sync.RWMutex
	backend stylesheet.Backend
	block   *Block[stylesheet.Style]
	log     *logger.Logger
}

// NewGlobals returns an empty set of container variants backed by backend.
func NewGlobals(backend stylesheet.Backend, log *logger.Logger) *Globals {
	return &Globals{
		backend: backend,
		block:   NewBlock[stylesheet.Style](),
		log:     log.With("component", "globals"),
	}
}

// RegisterContainerVariants stores every fragment of block under its
// __RNCS__<variant> key in one registration, then makes block the current set.
// Variants from earlier registrations are discarded, not merged.
func (g *Globals) RegisterContainerVariants(block *Block[stylesheet.Style]) {
	defs := make(map[string]stylesheet.Style, block.Len())
	block.Each(func(variant string, style stylesheet.Style) {
		defs[GlobalKey(variant)] = style
	})
	g.backend.Register(defs)

	next := block.Clone()
	g.mu.Lock()
	g.block = next
	g.mu.Unlock()

	g.log.Debug("container variants replaced", "variants", next.Keys())
}

// Keys returns the current container variant identifiers in declared order.
func (g *Globals) Keys() []string {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.block.Keys()
}
