package settings

import (
	"context"
	"errors"
)

var (
	ErrTitleRequired   = errors.New("settings: site title is required")
	ErrInvalidHomepage = errors.New("settings: invalid homepage mode")
)

// HomepageMode selects what the site root renders.
type HomepageMode string

const (
	HomepagePosts  HomepageMode = "posts"
	HomepageStatic HomepageMode = "static"
)

// General holds site identity and locale settings.
type General struct {
	SiteTitle   string `json:"siteTitle"`
	Tagline     string `json:"tagline"`
	SiteIcon    string `json:"siteIcon,omitempty"`
	SiteURL     string `json:"siteUrl"`
	AdminEmail  string `json:"adminEmail"`
	DefaultRole string `json:"defaultRole"`
	Language    string `json:"language"`
	Timezone    string `json:"timezone"`
}

// Writing holds authoring defaults.
type Writing struct {
	DefaultCategory string `json:"defaultCategory"`
	DefaultFormat   string `json:"defaultFormat"`
	DefaultEditor   string `json:"defaultEditor"`
}

// Reading holds public rendering settings.
type Reading struct {
	HomepageDisplay  HomepageMode `json:"homepageDisplay"`
	PageOnFront      string       `json:"pageOnFront"`
	PageForPosts     string       `json:"pageForPosts"`
	PostsPerPage     int          `json:"postsPerPage"`
	PostsInFeed      int          `json:"postsInFeed"`
	SearchVisibility bool         `json:"searchEngineVisibility"`
}

// Discussion holds the comment policy.
type Discussion struct {
	AllowComments     bool `json:"allowComments"`
	RequireNameEmail  bool `json:"requireNameEmail"`
	RequireLogin      bool `json:"requireLogin"`
	CloseAfterDays    int  `json:"closeCommentsDays"`
	ThreadComments    bool `json:"threadComments"`
	ThreadLevels      int  `json:"threadLevels"`
	CommentsPerPage   int  `json:"commentsPerPage"`
	EmailOnComment    bool `json:"emailOnComment"`
	EmailOnModeration bool `json:"emailOnModeration"`
}

// Media holds generated thumbnail dimensions.
type Media struct {
	ThumbWidth      int  `json:"thumbWidth"`
	ThumbHeight     int  `json:"thumbHeight"`
	ThumbCrop       bool `json:"thumbCrop"`
	MediumWidth     int  `json:"medWidth"`
	MediumHeight    int  `json:"medHeight"`
	LargeWidth      int  `json:"largeWidth"`
	LargeHeight     int  `json:"largeHeight"`
	OrganizeUploads bool `json:"organizeUploads"`
}

// Permalinks holds URL structure settings.
type Permalinks struct {
	Structure    string `json:"permalinkStructure"`
	CustomFormat string `json:"customPermalink"`
	CategoryBase string `json:"categoryBase,omitempty"`
	TagBase      string `json:"tagBase,omitempty"`
}

// Branding holds the site chrome assets edited outside the page editor.
type Branding struct {
	HeaderLogo string `json:"headerLogo"`
	FooterLogo string `json:"footerLogo"`
}

// Settings is the full configuration document, grouped the way the admin
// panel presents it.
type Settings struct {
	General       General    `json:"general"`
	Writing       Writing    `json:"writing"`
	Reading       Reading    `json:"reading"`
	Discussion    Discussion `json:"discussion"`
	Media         Media      `json:"media"`
	Permalinks    Permalinks `json:"permalinks"`
	Branding      Branding   `json:"branding"`
	PrivacyPageID string     `json:"privacyPageId,omitempty"`
}

// Validate checks cross-field consistency before a save is accepted.
func (s Settings) Validate() error {
	if s.General.SiteTitle == "" {
		return ErrTitleRequired
	}
	switch s.Reading.HomepageDisplay {
	case HomepagePosts, HomepageStatic, "":
	default:
		return ErrInvalidHomepage
	}
	return nil
}

// Service stores the single settings document.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	// Update replaces the whole document after validation. Partial edits are
	// expressed as get, mutate, update.
	Update(ctx context.Context, next Settings) (Settings, error)
}

// Default returns the configuration the site ships with.
func Default() Settings {
	return Settings{
		General: General{
			SiteTitle:   "SprouX",
			Tagline:     "Turn Knowledge into Financial Autonomy",
			SiteURL:     "https://sproux.ai",
			AdminEmail:  "admin@sproux.com",
			DefaultRole: "administrator",
			Language:    "en-US",
			Timezone:    "UTC+7",
		},
		Writing: Writing{
			DefaultCategory: "Uncategorized",
			DefaultFormat:   "standard",
			DefaultEditor:   "classic",
		},
		Reading: Reading{
			HomepageDisplay: HomepageStatic,
			PageOnFront:     "home",
			PostsPerPage:    10,
			PostsInFeed:     10,
		},
		Discussion: Discussion{
			AllowComments:     true,
			RequireNameEmail:  true,
			CloseAfterDays:    14,
			ThreadComments:    true,
			ThreadLevels:      5,
			CommentsPerPage:   50,
			EmailOnComment:    true,
			EmailOnModeration: true,
		},
		Media: Media{
			ThumbWidth:      150,
			ThumbHeight:     150,
			ThumbCrop:       true,
			MediumWidth:     300,
			MediumHeight:    300,
			LargeWidth:      1024,
			LargeHeight:     1024,
			OrganizeUploads: true,
		},
		Permalinks: Permalinks{
			Structure:    "postname",
			CustomFormat: "/%postname%/",
		},
	}
}
