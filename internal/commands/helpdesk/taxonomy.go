package helpdeskcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/helpdesk"
	"github.com/sproux/cms/internal/commands"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pkg/interfaces"
)

const (
	createCategoryMessageType = "cms.helpdesk.category.create"
	deleteCategoryMessageType = "cms.helpdesk.category.delete"
	createTopicMessageType    = "cms.helpdesk.topic.create"
	deleteTopicMessageType    = "cms.helpdesk.topic.delete"
	createArticleMessageType  = "cms.helpdesk.article.create"
)

// CreateCategoryCommand registers a help center category.
type CreateCategoryCommand struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Audience    helpdesk.Audience `json:"audience"`
}

// Type implements command.Message.
func (CreateCategoryCommand) Type() string { return createCategoryMessageType }

// Validate mirrors the service-level checks so bad messages fail fast.
func (cmd CreateCategoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.Required),
		validation.Field(&cmd.Label, validation.Required),
		validation.Field(&cmd.Audience, validation.Required, validation.By(func(value any) error {
			if !value.(helpdesk.Audience).Valid() {
				return validation.NewError("cms.helpdesk.category.create.audience_invalid", "audience must be creator or backer")
			}
			return nil
		})),
	)
}

// DeleteCategoryCommand removes an empty help center category.
type DeleteCategoryCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeleteCategoryCommand) Type() string { return deleteCategoryMessageType }

// Validate ensures the target id is present.
func (cmd DeleteCategoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.Required),
	)
}

// CreateTopicCommand registers a topic under an existing category.
type CreateTopicCommand struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Type implements command.Message.
func (CreateTopicCommand) Type() string { return createTopicMessageType }

// Validate ensures the identifying fields are present.
func (cmd CreateTopicCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.Required),
		validation.Field(&cmd.CategoryID, validation.Required),
		validation.Field(&cmd.Label, validation.Required),
	)
}

// DeleteTopicCommand removes an empty topic.
type DeleteTopicCommand struct {
	ID string `json:"id"`
}

// Type implements command.Message.
func (DeleteTopicCommand) Type() string { return deleteTopicMessageType }

// Validate ensures the target id is present.
func (cmd DeleteTopicCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.Required),
	)
}

// CreateArticleCommand authors a help center article under a topic.
type CreateArticleCommand struct {
	Slug        string `json:"slug,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	ReadingTime int    `json:"reading_time,omitempty"`
	TopicID     string `json:"topic_id"`
	Icon        string `json:"icon,omitempty"`
	Publish     bool   `json:"publish,omitempty"`
}

// Type implements command.Message.
func (CreateArticleCommand) Type() string { return createArticleMessageType }

// Validate ensures the title and topic are present.
func (cmd CreateArticleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Title, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("cms.helpdesk.article.create.title_required", "title is required")
			}
			return nil
		})),
		validation.Field(&cmd.TopicID, validation.Required),
		validation.Field(&cmd.ReadingTime, validation.Min(0)),
	)
}

// Handlers bundles the help desk command surface around one service instance.
type Handlers struct {
	CreateCategory *commands.Handler[CreateCategoryCommand]
	DeleteCategory *commands.Handler[DeleteCategoryCommand]
	CreateTopic    *commands.Handler[CreateTopicCommand]
	DeleteTopic    *commands.Handler[DeleteTopicCommand]
	CreateArticle  *commands.Handler[CreateArticleCommand]
}

// NewHandlers wires every help desk command to the provided service.
func NewHandlers(service helpdesk.Service, logger interfaces.Logger) *Handlers {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	return &Handlers{
		CreateCategory: commands.NewHandler(
			func(ctx context.Context, cmd CreateCategoryCommand) error {
				_, err := service.CreateCategory(ctx, helpdesk.CreateCategoryRequest{
					ID:          cmd.ID,
					Label:       cmd.Label,
					Description: cmd.Description,
					Icon:        cmd.Icon,
					Audience:    cmd.Audience,
				})
				return err
			},
			commands.WithLogger[CreateCategoryCommand](baseLogger),
			commands.WithOperation[CreateCategoryCommand]("helpdesk.category.create"),
		),
		DeleteCategory: commands.NewHandler(
			func(ctx context.Context, cmd DeleteCategoryCommand) error {
				return service.DeleteCategory(ctx, cmd.ID)
			},
			commands.WithLogger[DeleteCategoryCommand](baseLogger),
			commands.WithOperation[DeleteCategoryCommand]("helpdesk.category.delete"),
		),
		CreateTopic: commands.NewHandler(
			func(ctx context.Context, cmd CreateTopicCommand) error {
				_, err := service.CreateTopic(ctx, helpdesk.CreateTopicRequest{
					ID:          cmd.ID,
					CategoryID:  cmd.CategoryID,
					Label:       cmd.Label,
					Description: cmd.Description,
					Icon:        cmd.Icon,
				})
				return err
			},
			commands.WithLogger[CreateTopicCommand](baseLogger),
			commands.WithOperation[CreateTopicCommand]("helpdesk.topic.create"),
		),
		DeleteTopic: commands.NewHandler(
			func(ctx context.Context, cmd DeleteTopicCommand) error {
				return service.DeleteTopic(ctx, cmd.ID)
			},
			commands.WithLogger[DeleteTopicCommand](baseLogger),
			commands.WithOperation[DeleteTopicCommand]("helpdesk.topic.delete"),
		),
		CreateArticle: commands.NewHandler(
			func(ctx context.Context, cmd CreateArticleCommand) error {
				req := helpdesk.CreateArticleRequest{
					Slug:        cmd.Slug,
					Title:       cmd.Title,
					Description: cmd.Description,
					Content:     cmd.Content,
					ReadingTime: cmd.ReadingTime,
					TopicID:     cmd.TopicID,
					Icon:        cmd.Icon,
				}
				if cmd.Publish {
					req.Status = domain.StatusPublished
				}
				_, err := service.CreateArticle(ctx, req)
				return err
			},
			commands.WithLogger[CreateArticleCommand](baseLogger),
			commands.WithOperation[CreateArticleCommand]("helpdesk.article.create"),
		),
	}
}
