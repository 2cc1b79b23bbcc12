package blocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const defaultGroup = "General"

// pricingPlanSchema gates pricing-plan payloads before decode. Anything the
// schema rejects degrades to the default record instead of surfacing an error
// to the editor.
const pricingPlanSchema = `{
	"type": "object",
	"required": ["name", "price"],
	"properties": {
		"name": {"type": "string"},
		"price": {"type": "string"},
		"description": {"type": "string"},
		"features": {"type": ["array", "null"], "items": {"type": "string"}},
		"ctaText": {"type": "string"},
		"ctaVariant": {"enum": ["primary", "secondary", "neutral"]},
		"icon": {"type": "string"},
		"highlight": {"type": "string"}
	}
}`

const faqItemSchema = `{
	"type": "object",
	"required": ["question", "answer"],
	"properties": {
		"question": {"type": "string"},
		"answer": {"type": "string"}
	}
}`

// Registry knows, for each block type, how to parse a raw value into its
// structured form, serialize an edited form back, and mint default blocks for
// "add block" actions.
type Registry struct {
	planSchema *jsonschema.Schema
	faqSchema  *jsonschema.Schema
}

// NewRegistry constructs a registry with the compound payload schemas compiled.
func NewRegistry() *Registry {
	return &Registry{
		planSchema: jsonschema.MustCompileString("pricing-plan.json", pricingPlanSchema),
		faqSchema:  jsonschema.MustCompileString("faq-item.json", faqItemSchema),
	}
}

// Parse decodes a raw block value into its typed form. Malformed compound
// payloads never fail: they yield the type's default record so the editor
// stays usable over corrupt content.
func (r *Registry) Parse(t Type, raw string) Value {
	value, err := r.Decode(t, raw)
	if err == nil {
		return value
	}
	switch t {
	case TypePricingPlan:
		return PricingPlanValue{Plan: DefaultPricingPlan()}
	case TypeFAQItem:
		return FAQItemValue{Item: DefaultFAQItem()}
	default:
		// Simple types have no parse failure mode beyond an unknown tag.
		return TextValue{Type: TypeText, Text: raw}
	}
}

// Decode is the strict counterpart to Parse, surfacing what went wrong.
func (r *Registry) Decode(t Type, raw string) (Value, error) {
	switch t {
	case TypeText, TypeIconText, TypeVideo, TypeLink:
		return TextValue{Type: t, Text: raw}, nil
	case TypeImage:
		return ImageValue{URL: raw}, nil
	case TypeRichText:
		return RichTextValue{Markdown: raw}, nil
	case TypePricingPlan:
		plan, err := r.decodePricingPlan(raw)
		if err != nil {
			return nil, err
		}
		return PricingPlanValue{Plan: plan}, nil
	case TypeFAQItem:
		item, err := r.decodeFAQItem(raw)
		if err != nil {
			return nil, err
		}
		return FAQItemValue{Item: item}, nil
	default:
		return nil, ErrUnknownType
	}
}

// Serialize encodes a typed value back into the raw string stored on a block.
// Round-trips with Parse for every well-formed value.
func (r *Registry) Serialize(value Value) string {
	switch v := value.(type) {
	case TextValue:
		return v.Text
	case ImageValue:
		return v.URL
	case RichTextValue:
		return v.Markdown
	case PricingPlanValue:
		return encodeJSON(v.Plan)
	case FAQItemValue:
		return encodeJSON(v.Item)
	default:
		return ""
	}
}

// PricingPlan decodes a pricing-plan payload leniently.
func (r *Registry) PricingPlan(raw string) PricingPlan {
	plan, err := r.decodePricingPlan(raw)
	if err != nil {
		return DefaultPricingPlan()
	}
	return plan
}

// FAQItem decodes a faq-item payload leniently.
func (r *Registry) FAQItem(raw string) FAQItem {
	item, err := r.decodeFAQItem(raw)
	if err != nil {
		return DefaultFAQItem()
	}
	return item
}

// CreateDefault mints a new block of the given type with a generated id and a
// value that is always valid Parse input.
func (r *Registry) CreateDefault(t Type) (Block, error) {
	if !t.Valid() {
		return Block{}, ErrUnknownType
	}

	block := Block{
		ID:    NewBlockID(t),
		Type:  t,
		Value: "Enter content here...",
		Label: fmt.Sprintf("New %s Block", titleCase(string(t))),
		Metadata: Metadata{
			Group:    defaultGroup,
			Editable: true,
		},
	}

	switch t {
	case TypeImage:
		block.Value = "https://picsum.photos/800/600"
		block.Label = "New Image"
	case TypePricingPlan:
		block.Value = encodeJSON(DefaultPricingPlan())
		block.Label = "Pricing Plan Card"
		block.Metadata.Group = "Pricing Plans"
	case TypeFAQItem:
		block.Value = encodeJSON(DefaultFAQItem())
		block.Label = "FAQ Item"
		block.Metadata.Group = "FAQs"
	}

	return block, nil
}

// NewBlockID generates an admin-created block id. Uniqueness within a page is
// the caller's responsibility; the suffix makes collisions unlikely.
func NewBlockID(t Type) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("custom-%s-%s", t, suffix)
}

func (r *Registry) decodePricingPlan(raw string) (PricingPlan, error) {
	if err := r.validate(r.planSchema, raw); err != nil {
		return PricingPlan{}, err
	}
	var plan PricingPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return PricingPlan{}, fmt.Errorf("%w: %v", ErrValueNotJSON, err)
	}
	return plan, nil
}

func (r *Registry) decodeFAQItem(raw string) (FAQItem, error) {
	if err := r.validate(r.faqSchema, raw); err != nil {
		return FAQItem{}, err
	}
	var item FAQItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return FAQItem{}, fmt.Errorf("%w: %v", ErrValueNotJSON, err)
	}
	return item, nil
}

func (r *Registry) validate(schema *jsonschema.Schema, raw string) error {
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrValueNotJSON, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrValueInvalid, err)
	}
	return nil
}

func encodeJSON(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func titleCase(tag string) string {
	parts := strings.Split(tag, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
