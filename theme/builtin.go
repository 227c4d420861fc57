package theme

// scanlineCSS overlays a CRT scan-line pattern while keeping content and
// code blocks above it.
const scanlineCSS = `body::before {
  content: "";
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
  background: repeating-linear-gradient(0deg, rgba(0, 0, 0, 0.15), rgba(0, 0, 0, 0.15) 1px, transparent 1px, transparent 2px);
  pointer-events: none;
  z-index: 1;
}
body > * {
  position: relative;
  z-index: 2;
}
pre, code:not(pre code) {
  isolation: isolate;
}`

const glitchCSS = `@keyframes glitch {
  0%, 14% { text-shadow: 0.05em 0 0 rgba(255, 0, 0, 0.75), -0.025em -0.05em 0 rgba(0, 255, 0, 0.75), 0.025em 0.05em 0 rgba(0, 0, 255, 0.75); }
  15%, 49% { text-shadow: -0.05em -0.025em 0 rgba(255, 0, 0, 0.75), 0.025em 0.025em 0 rgba(0, 255, 0, 0.75), -0.05em -0.05em 0 rgba(0, 0, 255, 0.75); }
  50%, 99% { text-shadow: 0.025em 0.05em 0 rgba(255, 0, 0, 0.75), 0.05em 0 0 rgba(0, 255, 0, 0.75), 0 -0.05em 0 rgba(0, 0, 255, 0.75); }
  100% { text-shadow: -0.025em 0 0 rgba(255, 0, 0, 0.75), -0.025em -0.025em 0 rgba(0, 255, 0, 0.75), -0.025em -0.05em 0 rgba(0, 0, 255, 0.75); }
}
@keyframes blink {
  0%, 49% { opacity: 1; }
  50%, 100% { opacity: 0; }
}`

const scanLineEffect = "repeating-linear-gradient(0deg, rgba(0, 0, 0, 0.15), rgba(0, 0, 0, 0.15) 1px, transparent 1px, transparent 2px)"

var lightCode = Trio{Bg: "#f0f0f0", Text: "#000000", Border: "#333333"}

// ClassicClean is the light default theme.
var ClassicClean = Theme{
	Name:        Default,
	DisplayName: "Classic Clean",
	Colors: Colors{
		Background:        "#d5cfc0",
		BackgroundSurface: "#ddd8ca",
		BackgroundAccent:  "#c9c2b1",
		Text:              TextColors{Primary: "#1f1e1d", Secondary: "#5e5d59", Muted: "#87867f", Accent: "#3d3d3a"},
		Border:            BorderColors{Default: "#d1cfc5", Strong: "#1f1e1d", Accent: "#3d3d3a"},
		Button: ButtonColors{
			Primary:   Trio{Bg: "#1f1e1d", Text: "#faf9f5", Border: "#1f1e1d"},
			Secondary: Trio{Bg: "transparent", Text: "#1f1e1d", Border: "#1f1e1d"},
		},
		Code: Trio{Bg: "#c9c2b1", Text: "#1f1e1d", Border: "#d1cfc5"},
		Tag:  TagColors{Bg: "#c9c2b1", Text: "#5e5d59"},
	},
	Typography: Typography{
		FontFamily: FontFamily{Base: `"MS Sans Serif", sans-serif`, Heading: `"MS Sans Serif", sans-serif`, Code: `"Courier New", monospace`},
		FontSize:   FontSize{Base: "20px", Large: "1.1em", Small: "0.85em"},
		LineHeight: LineHeight{Base: "1.6", Tight: "1.4", Loose: "1.8"},
	},
	Spacing: Spacing{ContainerMaxWidth: "1000px", ContainerPadding: "1rem", SectionGap: "4rem", CardGap: "1.5rem"},
	Effects: Effects{BorderRadius: "8px", Shadow: "none", Transition: "all 0.2s ease"},
}

// terminalPalette holds the few values that differ between the dark
// terminal-style themes.
type terminalPalette struct {
	background, surface, accentBg string
	text                          TextColors
	borderAccent                  string
	rgb                           string // "r, g, b" of the primary glow colour
	baseFont                      string
	code                          Trio
	customCSS                     string
}

func terminal(name Name, display string, p terminalPalette) Theme {
	primary := p.text.Primary
	if p.baseFont == "" {
		p.baseFont = `"Courier New", "Consolas", monospace`
	}
	if p.code == (Trio{}) {
		p.code = lightCode
	}
	if p.customCSS == "" {
		p.customCSS = scanlineCSS
	}
	return Theme{
		Name:        name,
		DisplayName: display,
		Colors: Colors{
			Background:        p.background,
			BackgroundSurface: p.surface,
			BackgroundAccent:  p.accentBg,
			Text:              p.text,
			Border:            BorderColors{Default: primary, Strong: primary, Accent: p.borderAccent},
			Button: ButtonColors{
				Primary:   Trio{Bg: primary, Text: p.background, Border: primary},
				Secondary: Trio{Bg: "transparent", Text: primary, Border: primary},
			},
			Code: p.code,
			Tag:  TagColors{Bg: "rgba(" + p.rgb + ", 0.15)", Text: primary},
		},
		Typography: Typography{
			FontFamily: FontFamily{Base: p.baseFont, Heading: `"Courier New", "Consolas", monospace`, Code: `"Courier New", monospace`},
			FontSize:   FontSize{Base: "18px", Large: "1.1em", Small: "0.85em"},
			LineHeight: LineHeight{Base: "1.6", Tight: "1.4", Loose: "1.8"},
		},
		Spacing: Spacing{ContainerMaxWidth: "1200px", ContainerPadding: "1.5rem", SectionGap: "4rem", CardGap: "1.5rem"},
		Effects: Effects{
			BorderRadius: "0px",
			Shadow:       "0 0 10px rgba(" + p.rgb + ", 0.3)",
			Transition:   "all 0.15s ease-out",
			Custom: Extras{
				{Key: "textShadow", Value: "0 0 5px rgba(" + p.rgb + ", 0.5)"},
				{Key: "glowStrong", Value: "0 0 20px rgba(" + p.rgb + ", 0.6), 0 0 40px rgba(" + p.rgb + ", 0.3)"},
				{Key: "scanLine", Value: scanLineEffect},
			},
		},
		CustomCSS: p.customCSS,
	}
}

var (
	TechNoirBrutalism = func() Theme {
		t := terminal(TechNoir, "Tech Noir Brutalism", terminalPalette{
			background: "#0a0a0a", surface: "#111111", accentBg: "#1a1a1a",
			text:         TextColors{Primary: "#00ff41", Secondary: "#00cc33", Muted: "#008822", Accent: "#00ff41"},
			borderAccent: "#00ff41",
			rgb:          "0, 255, 65",
			customCSS:    scanlineCSS + "\n" + glitchCSS,
		})
		t.Colors.Button.Primary.Text = "#000"
		t.Colors.Tag.Bg = "rgba(0, 255, 65, 0.1)"
		return t
	}()

	MinitelCyanTheme = terminal(MinitelCyan, "Minitel Cyan", terminalPalette{
		background: "#0a1628", surface: "#0f1d35", accentBg: "#1a2942",
		text:         TextColors{Primary: "#5dade2", Secondary: "#7ec8ed", Muted: "#4a8ab8", Accent: "#85d4f7"},
		borderAccent: "#85d4f7",
		rgb:          "93, 173, 226",
	})

	NTTOrangeTheme = terminal(NTTOrange, "NTT Orange", terminalPalette{
		background: "#1a3a3a", surface: "#234545", accentBg: "#2d5555",
		text:         TextColors{Primary: "#ff6b35", Secondary: "#ff8555", Muted: "#cc5528", Accent: "#ffa070"},
		borderAccent: "#ffa070",
		rgb:          "255, 107, 53",
	})

	CADAmberTheme = terminal(CADAmber, "CAD Amber", terminalPalette{
		background: "#0a0a0a", surface: "#1a1a1a", accentBg: "#2a2a2a",
		text:         TextColors{Primary: "#ffb000", Secondary: "#ffc640", Muted: "#cc8c00", Accent: "#ffd700"},
		borderAccent: "#ffd700",
		rgb:          "255, 176, 0",
		baseFont:     `"Share Tech Mono", monospace`,
		code:         Trio{Bg: "#1a1a1a", Text: "#ffb000", Border: "#ffb000"},
	})

	CyanWireframeTheme = terminal(CyanWireframe, "Cyan Wireframe", terminalPalette{
		background: "#0a0f14", surface: "#111a21", accentBg: "#1a2730",
		text:         TextColors{Primary: "#00ced1", Secondary: "#40e0d0", Muted: "#008b8b", Accent: "#7fffd4"},
		borderAccent: "#7fffd4",
		rgb:          "0, 206, 209",
	})
)

// Builtin returns a registry holding the bundled themes. The editorial,
// academic and retro names resolve to the default theme until they get
// designs of their own.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(ClassicClean)
	r.Register(TechNoirBrutalism)
	r.Register(MinitelCyanTheme)
	r.Register(NTTOrangeTheme)
	r.Register(CADAmberTheme)
	r.Register(CyanWireframeTheme)
	r.Alias(Editorial, Default)
	r.Alias(Academic, Default)
	r.Alias(Retro, Default)
	return r
}
