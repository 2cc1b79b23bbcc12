package settings

import (
	"context"
	"sync"

	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pkg/interfaces"
	"github.com/sproux/cms/settings"
)

type service struct {
	mu      sync.RWMutex
	current settings.Settings
	logger  interfaces.Logger
}

// Option configures the settings service.
type Option func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a settings store seeded with the given document.
func NewService(initial settings.Settings, opts ...Option) settings.Service {
	s := &service{
		current: initial,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Get(_ context.Context) (settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *service) Update(_ context.Context, next settings.Settings) (settings.Settings, error) {
	if err := next.Validate(); err != nil {
		return settings.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next
	s.logger.Info("settings updated", "site_title", next.General.SiteTitle)
	return s.current, nil
}
