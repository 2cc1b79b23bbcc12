package blocks

import "sort"

// Icon is a supported icon identifier resolved through the catalog below.
// Unknown names fall back to DefaultIcon instead of failing a render.
type Icon struct {
	// Name is the stable identifier stored in block values and metadata.
	Name string
	// Glyph is the codepoint the site's icon font maps the name to.
	Glyph rune
}

// DefaultIcon renders for any icon name outside the catalog.
var DefaultIcon = Icon{Name: "HelpCircle", Glyph: ''}

// iconCatalog enumerates the icon identifiers the editor offers. The set
// mirrors what presentational sections ship glyphs for.
var iconCatalog = map[string]Icon{
	"Rocket":       {Name: "Rocket", Glyph: ''},
	"Cpu":          {Name: "Cpu", Glyph: ''},
	"ShieldCheck":  {Name: "ShieldCheck", Glyph: ''},
	"Zap":          {Name: "Zap", Glyph: ''},
	"Heart":        {Name: "Heart", Glyph: ''},
	"Settings":     {Name: "Settings", Glyph: ''},
	"Target":       {Name: "Target", Glyph: ''},
	"CheckCircle2": {Name: "CheckCircle2", Glyph: ''},
	"Activity":     {Name: "Activity", Glyph: ''},
	"Award":        {Name: "Award", Glyph: ''},
	"Anchor":       {Name: "Anchor", Glyph: ''},
	"Box":          {Name: "Box", Glyph: ''},
	"Camera":       {Name: "Camera", Glyph: ''},
	"Cloud":        {Name: "Cloud", Glyph: ''},
	"Database":     {Name: "Database", Glyph: ''},
	"FileText":     {Name: "FileText", Glyph: ''},
	"Globe":        {Name: "Globe", Glyph: ''},
	"HelpCircle":   DefaultIcon,
	"Coins":        {Name: "Coins", Glyph: ''},
	"Lock":         {Name: "Lock", Glyph: ''},
	"Scale":        {Name: "Scale", Glyph: ''},
	"User":         {Name: "User", Glyph: ''},
	"Users":        {Name: "Users", Glyph: ''},
	"ShieldAlert":  {Name: "ShieldAlert", Glyph: ''},
	"BarChart4":    {Name: "BarChart4", Glyph: ''},
	"TrendingUp":   {Name: "TrendingUp", Glyph: ''},
	"Lightbulb":    {Name: "Lightbulb", Glyph: ''},
	"Info":         {Name: "Info", Glyph: ''},
	"PenTool":      {Name: "PenTool", Glyph: ''},
	"Calendar":     {Name: "Calendar", Glyph: ''},
	"Tag":          {Name: "Tag", Glyph: ''},
	"Shield":       {Name: "Shield", Glyph: ''},
	"DollarSign":   {Name: "DollarSign", Glyph: ''},
	"UserCheck":    {Name: "UserCheck", Glyph: ''},
	"Gavel":        {Name: "Gavel", Glyph: ''},
	"CreditCard":   {Name: "CreditCard", Glyph: ''},
	"Package":      {Name: "Package", Glyph: ''},
	"Map":          {Name: "Map", Glyph: ''},
	"Calculator":   {Name: "Calculator", Glyph: ''},
	"Percent":      {Name: "Percent", Glyph: ''},
	"Edit3":        {Name: "Edit3", Glyph: ''},
	"CheckCircle":  {Name: "CheckCircle", Glyph: ''},
	"RotateCcw":    {Name: "RotateCcw", Glyph: ''},
}

// LookupIcon resolves an icon name against the catalog, falling back to
// DefaultIcon for unknown names.
func LookupIcon(name string) Icon {
	if icon, ok := iconCatalog[name]; ok {
		return icon
	}
	return DefaultIcon
}

// KnownIcon reports whether the name resolves without falling back.
func KnownIcon(name string) bool {
	_, ok := iconCatalog[name]
	return ok
}

// IconNames lists the catalog identifiers the editor's icon picker offers,
// sorted for stable display.
func IconNames() []string {
	names := make([]string, 0, len(iconCatalog))
	for name := range iconCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
