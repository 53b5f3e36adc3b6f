package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Service owns the shared generative backend as an explicitly
// constructed, dependency-injected object with one-time asynchronous
// initialization. Concurrent analyses arriving before initialization
// completes await the same in-flight load; if that load fails, every
// caller falls back to non-AI extraction for the process lifetime.
type Service struct {
	config *Config
	apiKey string

	group singleflight.Group

	mu     sync.RWMutex
	client Client
	ready  bool
	failed bool

	// newClient is swappable for tests.
	newClient func(ctx context.Context, cfg *Config, apiKey string) (Client, error)
}

// NewService creates an uninitialized backend service.
func NewService(config *Config, apiKey string) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	return &Service{
		config:    config,
		apiKey:    apiKey,
		newClient: NewClient,
	}
}

// Initialize loads the backend client exactly once. Every concurrent
// caller shares the single in-flight load and its outcome. A failed load
// is permanent: later calls return the failure immediately instead of
// retrying per-request.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.RLock()
	if s.ready {
		s.mu.RUnlock()
		return nil
	}
	if s.failed {
		s.mu.RUnlock()
		return fmt.Errorf("generative backend permanently unavailable")
	}
	s.mu.RUnlock()

	_, err, _ := s.group.Do("init", func() (any, error) {
		client, err := s.newClient(ctx, s.config, s.apiKey)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.failed = true
			return nil, fmt.Errorf("failed to initialize generative backend: %w", err)
		}
		s.client = client
		s.ready = true
		return nil, nil
	})
	return err
}

// Ready reports whether the backend loaded successfully.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Client returns the loaded client, or false when the backend is not
// available.
func (s *Service) Client() (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, false
	}
	return s.client, true
}

// Config returns the service configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Close releases the underlying client, if loaded.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
