package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sproux/cms/auth"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pkg/interfaces"
)

type service struct {
	mu      sync.RWMutex
	users   map[string]*auth.User
	byEmail map[string]string
	order   []string

	logger interfaces.Logger
	clock  func() time.Time
}

// Option configures the auth service.
type Option func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService builds an empty user directory.
func NewService(opts ...Option) auth.Service {
	s := &service{
		users:   make(map[string]*auth.User),
		byEmail: make(map[string]string),
		logger:  logging.NoOp(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Authenticate(_ context.Context, email, password string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		s.logger.Warn("login rejected", "email", email)
		return nil, auth.ErrInvalidCredentials
	}

	user := s.users[id]
	// Plain text comparison on purpose. The whole login surface is a mock.
	if user.Password == "" || user.Password != password {
		s.logger.Warn("login rejected", "email", email)
		return nil, auth.ErrInvalidCredentials
	}

	now := s.clock()
	user.LastLogin = &now

	s.logger.Info("login accepted", "user_id", user.ID, "role", string(user.Role))
	return sanitize(user), nil
}

func (s *service) GetUser(_ context.Context, id string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return sanitize(user), nil
}

func (s *service) ListUsers(_ context.Context) ([]*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*auth.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, sanitize(s.users[id]))
	}
	return out, nil
}

func (s *service) AddUser(_ context.Context, user auth.User) (*auth.User, error) {
	if user.ID == "" || user.Email == "" {
		return nil, auth.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, ok := s.users[user.ID]; ok {
		return nil, auth.ErrUserExists
	}
	if _, ok := s.byEmail[email]; ok {
		return nil, auth.ErrUserExists
	}
	if user.Role == "" {
		user.Role = auth.RoleEditor
	}

	stored := user
	s.users[user.ID] = &stored
	s.byEmail[email] = user.ID
	s.order = append(s.order, user.ID)

	return sanitize(&stored), nil
}

func sanitize(user *auth.User) *auth.User {
	out := *user
	out.Password = ""
	return &out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
