// Package templates locates component templates and renders them.
package templates

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// ErrTemplateNotFound is returned when no strategy finds the template.
var ErrTemplateNotFound = errors.New("Template not found")

// Attempt records the outcome of one strategy during a traced resolve.
type Attempt struct {
	Strategy string `json:"strategy"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
}

// Resolver runs strategies in order and returns the first match.
type Resolver struct {
	strategies []Strategy
	cache      *lru.Cache[string, Match]
	log        *zap.Logger
}

// NewResolver builds a resolver. A cacheSize of zero disables caching.
func NewResolver(log *zap.Logger, cacheSize int, strategies ...Strategy) (*Resolver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{strategies: strategies, log: log}
	if cacheSize > 0 {
		cache, err := lru.New[string, Match](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create template cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Strategies returns the configured strategies in search order.
func (r *Resolver) Strategies() []Strategy {
	return append([]Strategy(nil), r.strategies...)
}

// Resolve finds fileName using the first strategy that reports a match.
func (r *Resolver) Resolve(fileName string) (Match, error) {
	if r.cache != nil {
		if m, ok := r.cache.Get(fileName); ok {
			if m.exists() {
				return m, nil
			}
			r.cache.Remove(fileName)
			r.log.Debug("cached template vanished", zap.String("file", fileName), zap.String("path", m.Path))
		}
	}

	for _, s := range r.strategies {
		m, ok := s.Find(fileName)
		if !ok {
			r.log.Debug("template strategy missed", zap.String("file", fileName), zap.String("strategy", s.Name()))
			continue
		}
		r.log.Debug("template resolved",
			zap.String("file", fileName),
			zap.String("strategy", s.Name()),
			zap.String("path", m.Path))
		if r.cache != nil {
			r.cache.Add(fileName, m)
		}
		return m, nil
	}
	return Match{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, fileName)
}

// Trace runs every strategy without stopping at the first match.
func (r *Resolver) Trace(fileName string) []Attempt {
	attempts := make([]Attempt, 0, len(r.strategies))
	for _, s := range r.strategies {
		m, ok := s.Find(fileName)
		attempts = append(attempts, Attempt{Strategy: s.Name(), Found: ok, Path: m.Path})
	}
	return attempts
}

// FileName maps a component extension to its template file, e.g. "tsx" to
// "TSXComponent.txt".
func FileName(ext string) string {
	return strings.ToUpper(strings.TrimPrefix(ext, ".")) + "Component.txt"
}
