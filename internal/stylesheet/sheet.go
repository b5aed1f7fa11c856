package stylesheet

import (
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/styler/internal/logger"
)

// Separator joins the segments of a style key.
const Separator = "__"

// Backend registers style fragments by key and looks them up again.
type Backend interface {
	Register(defs map[string]Style)
	RegisterNested(scope string, tree map[string]map[string]Style)
	Lookup(key string) Style
}

// Join builds a style key from its segments.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Sheet is the in-memory Backend. It is safe for concurrent use.
type Sheet struct {
	mu     sync.RWMutex
	styles map[string]Style
	log    *logger.Logger
}

// NewSheet creates an empty sheet. log may be nil.
func NewSheet(log *logger.Logger) *Sheet {
	return &Sheet{
		styles: make(map[string]Style),
		log:    log.With("component", "stylesheet"),
	}
}

// Register stores every definition, replacing existing keys.
func (s *Sheet) Register(defs map[string]Style) {
	if len(defs) == 0 {
		return
	}

	s.mu.Lock()
	for key, style := range defs {
		s.styles[key] = style
	}
	s.mu.Unlock()

	s.log.Debug("registered styles", "count", len(defs))
}

// RegisterNested flattens a two-level definition tree into
// scope__outer__inner keys and registers it as one batch.
func (s *Sheet) RegisterNested(scope string, tree map[string]map[string]Style) {
	defs := make(map[string]Style)
	for outer, inner := range tree {
		for key, style := range inner {
			defs[Join(scope, outer, key)] = style
		}
	}
	s.Register(defs)
}

// Lookup returns the style stored under key, or nil when none is registered.
func (s *Sheet) Lookup(key string) Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styles[key]
}

// Keys returns the registered keys in lexical order.
func (s *Sheet) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.styles))
	for key := range s.styles {
		keys = append(keys, key)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Len reports how many keys are registered.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.styles)
}

var _ Backend = (*Sheet)(nil)
