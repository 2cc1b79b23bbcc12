package blocks

import "strings"

// Type identifies how a block's raw value is interpreted. The set is closed:
// downstream parsers and presentational sections rely on it never growing
// implicitly.
type Type string

const (
	TypeText        Type = "text"
	TypeImage       Type = "image"
	TypeIconText    Type = "icon-text"
	TypeVideo       Type = "video"
	TypeRichText    Type = "richtext"
	TypeLink        Type = "link"
	TypePricingPlan Type = "pricing-plan"
	TypeFAQItem     Type = "faq-item"
)

// ParseType validates a raw type tag against the closed set.
func ParseType(input string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(input)))
	if !t.Valid() {
		return "", ErrUnknownType
	}
	return t, nil
}

// Valid reports whether the type belongs to the closed set.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeImage, TypeIconText, TypeVideo, TypeRichText, TypeLink, TypePricingPlan, TypeFAQItem:
		return true
	default:
		return false
	}
}

// Compound reports whether the block value carries a serialized structured
// record rather than plain text.
func (t Type) Compound() bool {
	return t == TypePricingPlan || t == TypeFAQItem
}

// Metadata is the optional admin-facing bag attached to a block.
type Metadata struct {
	// Group names the logical editor section; blocks without one land in
	// the default group.
	Group string `json:"group,omitempty"`
	// Selector targets a CSS class for visual highlight in the editor.
	Selector string `json:"selector,omitempty"`
	// Alt holds image alternative text, projected as "<id>-alt".
	Alt string `json:"alt,omitempty"`
	// Icon names an entry in the icon catalog.
	Icon string `json:"icon,omitempty"`
	// Kind refines presentation for text blocks (e.g. "icon").
	Kind        string `json:"type,omitempty"`
	Editable    bool   `json:"editable,omitempty"`
	Locked      bool   `json:"locked,omitempty"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// MetadataPatch carries a shallow metadata merge: set pointers overwrite,
// nil pointers preserve the existing value.
type MetadataPatch struct {
	Group       *string
	Selector    *string
	Alt         *string
	Icon        *string
	Kind        *string
	Editable    *bool
	Locked      *bool
	Highlighted *bool
}

// Apply merges the patch over the supplied metadata and returns the result.
func (p MetadataPatch) Apply(meta Metadata) Metadata {
	if p.Group != nil {
		meta.Group = *p.Group
	}
	if p.Selector != nil {
		meta.Selector = *p.Selector
	}
	if p.Alt != nil {
		meta.Alt = *p.Alt
	}
	if p.Icon != nil {
		meta.Icon = *p.Icon
	}
	if p.Kind != nil {
		meta.Kind = *p.Kind
	}
	if p.Editable != nil {
		meta.Editable = *p.Editable
	}
	if p.Locked != nil {
		meta.Locked = *p.Locked
	}
	if p.Highlighted != nil {
		meta.Highlighted = *p.Highlighted
	}
	return meta
}

// Block is the atomic unit of editable content: a keyed value with a type tag
// and optional rendering metadata. The id doubles as the contract between the
// page document and the presentational section that reads it.
type Block struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Value    string   `json:"value"`
	Label    string   `json:"label"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Clone returns a copy of the block.
func (b Block) Clone() Block {
	return b
}

// CloneBlocks returns a deep copy of a block sequence, preserving order.
func CloneBlocks(in []Block) []Block {
	if in == nil {
		return nil
	}
	out := make([]Block, len(in))
	copy(out, in)
	return out
}

// CTAVariant selects the call-to-action button treatment on a pricing card.
type CTAVariant string

const (
	CTAVariantPrimary   CTAVariant = "primary"
	CTAVariantSecondary CTAVariant = "secondary"
	CTAVariantNeutral   CTAVariant = "neutral"
)

// Valid reports whether the variant is one of the supported treatments.
func (v CTAVariant) Valid() bool {
	switch v {
	case CTAVariantPrimary, CTAVariantSecondary, CTAVariantNeutral:
		return true
	default:
		return false
	}
}

// PricingPlan is the structured record behind a pricing-plan block value.
type PricingPlan struct {
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	CTAText     string     `json:"ctaText"`
	CTAVariant  CTAVariant `json:"ctaVariant"`
	Icon        string     `json:"icon"`
	Highlight   string     `json:"highlight,omitempty"`
}

// FAQItem is the structured record behind a faq-item block value. The answer
// may embed inline markup.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DefaultPricingPlan returns the record used for newly added pricing cards.
func DefaultPricingPlan() PricingPlan {
	return PricingPlan{
		Name:        "New Plan",
		Price:       "$0",
		Description: "Plan description",
		Features:    []string{"Feature 1", "Feature 2"},
		CTAText:     "Buy Now",
		CTAVariant:  CTAVariantPrimary,
		Icon:        "Rocket",
	}
}

// DefaultFAQItem returns the record used for newly added FAQ entries.
func DefaultFAQItem() FAQItem {
	return FAQItem{
		Question: "New Question?",
		Answer:   "Enter answer here...",
	}
}
