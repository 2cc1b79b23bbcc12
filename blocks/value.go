package blocks

// Value is the decoded, typed form of a block's raw value. It is a closed
// union: every implementation lives in this package.
type Value interface {
	// Kind reports the block type the value decodes for.
	Kind() Type
}

// TextValue covers the plain-string block types (text, icon-text, video, link).
// The type tag is retained so serialization round-trips exactly.
type TextValue struct {
	Type Type
	Text string
}

// Kind implements Value.
func (v TextValue) Kind() Type { return v.Type }

// ImageValue carries an image URL. Alt text lives in block metadata, not in
// the value, mirroring how the projection exposes it.
type ImageValue struct {
	URL string
}

// Kind implements Value.
func (ImageValue) Kind() Type { return TypeImage }

// RichTextValue carries Markdown source rendered to HTML at projection time.
type RichTextValue struct {
	Markdown string
}

// Kind implements Value.
func (RichTextValue) Kind() Type { return TypeRichText }

// PricingPlanValue wraps a decoded pricing plan record.
type PricingPlanValue struct {
	Plan PricingPlan
}

// Kind implements Value.
func (PricingPlanValue) Kind() Type { return TypePricingPlan }

// FAQItemValue wraps a decoded FAQ record.
type FAQItemValue struct {
	Item FAQItem
}

// Kind implements Value.
func (FAQItemValue) Kind() Type { return TypeFAQItem }
