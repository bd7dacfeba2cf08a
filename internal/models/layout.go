package models

// Layout selects one of the card designs.
type Layout string

const (
	LayoutModern   Layout = "modern"
	LayoutClassic  Layout = "classic"
	LayoutMinimal  Layout = "minimal"
	LayoutGradient Layout = "gradient"
	LayoutCreative Layout = "creative"
)

// DefaultLayout is rendered when the stored layout is not recognized.
const DefaultLayout = LayoutModern

// Layouts lists every layout in the order the settings screen offers them.
var Layouts = []Layout{LayoutModern, LayoutClassic, LayoutMinimal, LayoutGradient, LayoutCreative}

// Valid reports whether l is one of the enumerated layouts.
func (l Layout) Valid() bool {
	switch l {
	case LayoutModern, LayoutClassic, LayoutMinimal, LayoutGradient, LayoutCreative:
		return true
	}
	return false
}

// Resolve returns l, or DefaultLayout when l is unknown.
func (l Layout) Resolve() Layout {
	if l.Valid() {
		return l
	}
	return DefaultLayout
}

// DisplayName is the label shown in the layout picker.
func (l Layout) DisplayName() string {
	switch l.Resolve() {
	case LayoutClassic:
		return "Clássico"
	case LayoutMinimal:
		return "Minimalista"
	case LayoutGradient:
		return "Gradiente"
	case LayoutCreative:
		return "Criativo"
	default:
		return "Moderno"
	}
}

// Theme selects light or dark rendering.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is rendered when the stored theme is not recognized.
const DefaultTheme = ThemeDark

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Resolve() Theme {
	if t.Valid() {
		return t
	}
	return DefaultTheme
}
