package theme

import "strings"

// Variable is one CSS custom property.
type Variable struct {
	Name  string
	Value string
}

// Variables is an ordered set of custom properties.
type Variables []Variable

// Variables flattens t into CSS custom properties. The order is fixed by the
// theme schema, followed by one --effect-<key> entry per custom effect.
// Values are passed through untouched.
func (t Theme) Variables() Variables {
	c, ty, sp, fx := t.Colors, t.Typography, t.Spacing, t.Effects
	vars := Variables{
		{"--color-background", c.Background},
		{"--color-background-surface", c.BackgroundSurface},
		{"--color-background-accent", c.BackgroundAccent},

		{"--color-text-primary", c.Text.Primary},
		{"--color-text-secondary", c.Text.Secondary},
		{"--color-text-muted", c.Text.Muted},
		{"--color-text-accent", c.Text.Accent},

		{"--color-border-default", c.Border.Default},
		{"--color-border-strong", c.Border.Strong},
		{"--color-border-accent", c.Border.Accent},

		{"--color-button-primary-bg", c.Button.Primary.Bg},
		{"--color-button-primary-text", c.Button.Primary.Text},
		{"--color-button-primary-border", c.Button.Primary.Border},

		{"--color-button-secondary-bg", c.Button.Secondary.Bg},
		{"--color-button-secondary-text", c.Button.Secondary.Text},
		{"--color-button-secondary-border", c.Button.Secondary.Border},

		{"--color-code-bg", c.Code.Bg},
		{"--color-code-text", c.Code.Text},
		{"--color-code-border", c.Code.Border},

		{"--color-tag-bg", c.Tag.Bg},
		{"--color-tag-text", c.Tag.Text},

		{"--font-family-base", ty.FontFamily.Base},
		{"--font-family-heading", ty.FontFamily.Heading},
		{"--font-family-code", ty.FontFamily.Code},

		{"--font-size-base", ty.FontSize.Base},
		{"--font-size-large", ty.FontSize.Large},
		{"--font-size-small", ty.FontSize.Small},

		{"--line-height-base", ty.LineHeight.Base},
		{"--line-height-tight", ty.LineHeight.Tight},
		{"--line-height-loose", ty.LineHeight.Loose},

		{"--container-max-width", sp.ContainerMaxWidth},
		{"--container-padding", sp.ContainerPadding},
		{"--section-gap", sp.SectionGap},
		{"--card-gap", sp.CardGap},

		{"--border-radius", fx.BorderRadius},
		{"--shadow", fx.Shadow},
		{"--transition", fx.Transition},
	}
	for _, e := range fx.Custom {
		vars = append(vars, Variable{Name: "--effect-" + e.Key, Value: e.Value})
	}
	return vars
}

// Map returns the variables as a name to value mapping. A later duplicate
// name wins.
func (v Variables) Map() map[string]string {
	m := make(map[string]string, len(v))
	for _, e := range v {
		m[e.Name] = e.Value
	}
	return m
}

// Declarations renders one "name: value;" line per variable.
func (v Variables) Declarations() string {
	var b strings.Builder
	for _, e := range v {
		b.WriteString(e.Name)
		b.WriteString(": ")
		b.WriteString(e.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

// Stylesheet renders t as a :root rule followed by its custom CSS.
func Stylesheet(t Theme) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, line := range strings.SplitAfter(t.Variables().Declarations(), "\n") {
		if line == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
	}
	b.WriteString("}\n")
	if css := strings.TrimSpace(t.CustomCSS); css != "" {
		b.WriteString(css)
		b.WriteString("\n")
	}
	return b.String()
}
