package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/lumina-labs/lumina/internal/llm"
	"github.com/lumina-labs/lumina/internal/scoring"
)

// Config tunes narrative generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard narrative settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service generates result narratives asynchronously. A nil provider is
// allowed: requests complete immediately with no narrative, and callers
// fall back to the static lookup.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Analysis
	ready   bool
}

// NewService creates a narrative service. provider may be nil.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether an LLM provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Request starts async narrative generation for res. Only one request
// is in-flight at a time; a new request replaces a pending one. There
// is no retry: any failure resolves to "no narrative".
func (s *Service) Request(ctx context.Context, res *scoring.Result) {
	if s.provider == nil {
		s.mu.Lock()
		s.pending = nil
		s.ready = true
		s.mu.Unlock()
		return
	}

	go func() {
		a, err := s.generate(ctx, res)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: narrative generation: %v\n", err)
			a = nil
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = a
		s.ready = true
	}()
}

// Consume returns the finished narrative once generation has resolved.
// ok is false while the request is still in flight. A resolved request
// with a nil Analysis means generation failed or was unavailable.
func (s *Service) Consume() (*Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	a := s.pending
	s.pending = nil
	s.ready = false
	return a, true
}

func (s *Service) generate(ctx context.Context, res *scoring.Result) (*Analysis, error) {
	req := llm.Request{
		System:      narrativeSystemPrompt,
		Prompt:      buildPrompt(res),
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var a Analysis
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse narrative response: %w", err)
	}
	return &a, nil
}
