package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/internal/commands"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/pkg/interfaces"
)

const publishPageMessageType = "cms.pages.publish"

// PublishPageCommand replaces a page's blocks and status in one write. It is
// the message form of an editor session commit, usable from scripts and
// importers as well.
type PublishPageCommand struct {
	PageID string         `json:"page_id"`
	Status domain.Status  `json:"status"`
	Blocks []blocks.Block `json:"blocks"`
}

// Type implements command.Message.
func (PublishPageCommand) Type() string { return publishPageMessageType }

// Validate ensures the target page and status are usable before handlers run.
func (cmd PublishPageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.PageID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("cms.pages.publish.page_id_required", "page id is required")
			}
			return nil
		})),
		validation.Field(&cmd.Status, validation.Required, validation.By(func(value any) error {
			if !value.(domain.Status).Valid() {
				return validation.NewError("cms.pages.publish.status_invalid", "status must be draft, published, or private")
			}
			return nil
		})),
	)
}

// PublishPageHandler orchestrates page publication.
type PublishPageHandler struct {
	inner *commands.Handler[PublishPageCommand]
}

// NewPublishPageHandler constructs a handler wired to the page service.
func NewPublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPageCommand]) *PublishPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd PublishPageCommand) error {
		page, err := service.ReplaceBlocks(ctx, pages.ReplaceBlocksRequest{
			PageID: cmd.PageID,
			Blocks: cmd.Blocks,
			Status: cmd.Status,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"page_id": page.ID,
			"status":  string(page.Status),
			"blocks":  len(page.Blocks),
		}).Info("page published")
		return nil
	}

	options := append([]commands.HandlerOption[PublishPageCommand]{
		commands.WithLogger[PublishPageCommand](baseLogger),
		commands.WithOperation[PublishPageCommand]("pages.publish"),
	}, opts...)

	return &PublishPageHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *PublishPageHandler) Execute(ctx context.Context, cmd PublishPageCommand) error {
	return h.inner.Execute(ctx, cmd)
}
