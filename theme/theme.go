// Package theme describes the site's visual themes and flattens them into
// CSS custom properties.
//
// A Theme is declarative data. Applying the resulting variables to a page
// and remembering which theme a visitor picked belong to the caller; see
// PreferenceStore.
package theme

// Name identifies a registered theme.
type Name string

const (
	Default       Name = "default"
	TechNoir      Name = "tech-noir"
	MinitelCyan   Name = "minitel-cyan"
	NTTOrange     Name = "ntt-orange"
	CADAmber      Name = "cad-amber"
	CyanWireframe Name = "cyan-wireframe"
	Editorial     Name = "editorial"
	Academic      Name = "academic"
	Retro         Name = "retro"
)

// Theme is the full design description of one theme.
type Theme struct {
	Name        Name       `yaml:"name"`
	DisplayName string     `yaml:"displayName"`
	Colors      Colors     `yaml:"colors"`
	Typography  Typography `yaml:"typography"`
	Spacing     Spacing    `yaml:"spacing"`
	Effects     Effects    `yaml:"effects"`
	CustomCSS   string     `yaml:"customCSS"`
}

type Colors struct {
	Background        string       `yaml:"background"`
	BackgroundSurface string       `yaml:"backgroundSurface"`
	BackgroundAccent  string       `yaml:"backgroundAccent"`
	Text              TextColors   `yaml:"text"`
	Border            BorderColors `yaml:"border"`
	Button            ButtonColors `yaml:"button"`
	Code              Trio         `yaml:"code"`
	Tag               TagColors    `yaml:"tag"`
}

type TextColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Muted     string `yaml:"muted"`
	Accent    string `yaml:"accent"`
}

type BorderColors struct {
	Default string `yaml:"default"`
	Strong  string `yaml:"strong"`
	Accent  string `yaml:"accent"`
}

type ButtonColors struct {
	Primary   Trio `yaml:"primary"`
	Secondary Trio `yaml:"secondary"`
}

// Trio is the background/text/border triple shared by buttons and code.
type Trio struct {
	Bg     string `yaml:"bg"`
	Text   string `yaml:"text"`
	Border string `yaml:"border"`
}

type TagColors struct {
	Bg   string `yaml:"bg"`
	Text string `yaml:"text"`
}

type Typography struct {
	FontFamily FontFamily `yaml:"fontFamily"`
	FontSize   FontSize   `yaml:"fontSize"`
	LineHeight LineHeight `yaml:"lineHeight"`
}

type FontFamily struct {
	Base    string `yaml:"base"`
	Heading string `yaml:"heading"`
	Code    string `yaml:"code"`
}

type FontSize struct {
	Base  string `yaml:"base"`
	Large string `yaml:"large"`
	Small string `yaml:"small"`
}

type LineHeight struct {
	Base  string `yaml:"base"`
	Tight string `yaml:"tight"`
	Loose string `yaml:"loose"`
}

type Spacing struct {
	ContainerMaxWidth string `yaml:"containerMaxWidth"`
	ContainerPadding  string `yaml:"containerPadding"`
	SectionGap        string `yaml:"sectionGap"`
	CardGap           string `yaml:"cardGap"`
}

type Effects struct {
	BorderRadius string `yaml:"borderRadius"`
	Shadow       string `yaml:"shadow"`
	Transition   string `yaml:"transition"`
	// Custom holds theme-specific effects in declaration order.
	Custom Extras `yaml:"customEffects"`
}

// Extra is one theme-specific effect.
type Extra struct {
	Key   string
	Value string
}

// Extras is an ordered list of effects.
type Extras []Extra
