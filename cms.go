// Package cms assembles the SprouX marketing site content services: page
// documents and their block projections, the visual editor, the help center,
// the blog, the media library, the mock admin login, and site settings.
package cms

import (
	"context"

	"github.com/sproux/cms/auth"
	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/editor"
	"github.com/sproux/cms/helpdesk"
	internalauth "github.com/sproux/cms/internal/auth"
	"github.com/sproux/cms/internal/commands"
	helpdeskcmd "github.com/sproux/cms/internal/commands/helpdesk"
	pagescmd "github.com/sproux/cms/internal/commands/pages"
	interneditor "github.com/sproux/cms/internal/editor"
	internalhelpdesk "github.com/sproux/cms/internal/helpdesk"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/internal/logging/gologger"
	"github.com/sproux/cms/internal/markdown"
	internalmedia "github.com/sproux/cms/internal/media"
	internalpages "github.com/sproux/cms/internal/pages"
	internalposts "github.com/sproux/cms/internal/posts"
	internalsettings "github.com/sproux/cms/internal/settings"
	"github.com/sproux/cms/media"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/pkg/interfaces"
	"github.com/sproux/cms/posts"
	"github.com/sproux/cms/settings"
)

// Module is the composition root. Collaborators receive only the service
// surfaces they need: the editor holds read-write access to one page at a
// time, public rendering reads projections.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider

	registry *blocks.Registry
	renderer *markdown.Renderer

	pages    pages.Service
	editor   editor.Manager
	helpdesk helpdesk.Service
	posts    posts.Service
	media    media.Service
	auth     auth.Service
	settings settings.Service

	commands *Commands
}

// Commands exposes the message-based admin surface.
type Commands struct {
	PublishPage *pagescmd.PublishPageHandler
	HelpDesk    *helpdeskcmd.Handlers
}

// Option customizes module construction.
type Option func(*Module)

// WithLoggerProvider replaces the logger built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New wires every service with shared infrastructure. A zero Config gets
// defaults applied.
func New(cfg Config, opts ...Option) (*Module, error) {
	if (cfg == Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	m.registry = blocks.NewRegistry()
	m.renderer = markdown.NewRenderer(markdown.Options{
		HardWraps: cfg.Markdown.HardWraps,
		Unsafe:    cfg.Markdown.Unsafe,
	})

	m.pages = internalpages.NewService(
		internalpages.NewMemoryRepository(),
		m.registry,
		m.renderer,
		internalpages.WithLogger(logging.PagesLogger(m.provider)),
	)
	m.editor = interneditor.NewManager(
		m.pages,
		m.registry,
		interneditor.WithLogger(logging.EditorLogger(m.provider)),
	)
	m.helpdesk = internalhelpdesk.NewService(
		internalhelpdesk.WithLogger(logging.HelpDeskLogger(m.provider)),
	)
	m.posts = internalposts.NewService(
		m.renderer,
		internalposts.WithLogger(logging.PostsLogger(m.provider)),
	)
	m.media = internalmedia.NewService(
		internalmedia.WithLogger(logging.MediaLogger(m.provider)),
	)
	m.auth = internalauth.NewService(
		internalauth.WithLogger(logging.AuthLogger(m.provider)),
	)
	m.settings = internalsettings.NewService(
		settings.Default(),
		internalsettings.WithLogger(logging.SettingsLogger(m.provider)),
	)

	m.commands = &Commands{
		PublishPage: pagescmd.NewPublishPageHandler(m.pages, commands.CommandLogger(m.provider, "pages")),
		HelpDesk:    helpdeskcmd.NewHandlers(m.helpdesk, commands.CommandLogger(m.provider, "helpdesk")),
	}

	if cfg.Seed {
		if err := m.SeedSiteContent(context.Background()); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Pages returns the page document store.
func (m *Module) Pages() pages.Service { return m.pages }

// Blocks returns the content block registry.
func (m *Module) Blocks() *blocks.Registry { return m.registry }

// Editor returns the visual editor session manager.
func (m *Module) Editor() editor.Manager { return m.editor }

// HelpDesk returns the help center catalog.
func (m *Module) HelpDesk() helpdesk.Service { return m.helpdesk }

// Posts returns the blog service.
func (m *Module) Posts() posts.Service { return m.posts }

// Media returns the media library.
func (m *Module) Media() media.Service { return m.media }

// Auth returns the mock admin login.
func (m *Module) Auth() auth.Service { return m.auth }

// Settings returns the site settings store.
func (m *Module) Settings() settings.Service { return m.settings }

// Commands returns the message-based admin surface.
func (m *Module) Commands() *Commands { return m.commands }
