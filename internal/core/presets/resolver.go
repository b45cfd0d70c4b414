// Package presets maps the free-text style labels returned by the model onto
// a closed palette of gradients and filter chains.
//
// Labels are matched case-insensitively by substring against an ordered
// rule table; the first rule whose phrase occurs in the label wins, even if
// a later phrase would be a longer match. Resolution is pure and never fails.
package presets

import (
	"slices"
	"strings"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

const gradientAngle = 135

// DefaultName is the preset name used when no phrase matches.
const DefaultName = "default"

// Theme supplies the colours of the fallback gradient.
type Theme struct {
	Primary string
	Accent  string
}

// DefaultTheme refers to the client's CSS theme tokens.
var DefaultTheme = Theme{
	Primary: "hsl(var(--primary))",
	Accent:  "hsl(var(--accent))",
}

type backgroundRule struct {
	phrase string
	preset domain.BackgroundPreset
}

type filterRule struct {
	phrase string
	chain  domain.FilterChain
}

var backgroundRules = []backgroundRule{
	{"neon purple haze", gradient("neon purple haze", "#A020F0", "#4a0e80")},
	{"blue rainy gradient", gradient("blue rainy gradient", "#3a7bd5", "#00d2ff")},
	{"aesthetic sunset", gradient("aesthetic sunset", "#ff7e5f", "#feb47b")},
	{"urban black-and-white", gradient("urban black-and-white", "#232526", "#414345")},
	{"glitchcore", gradient("glitchcore", "#ff00ff", "#00ffff")},
	{"cozy pastel", gradient("cozy pastel", "#e0c3fc", "#8ec5fc")},
	{"vaporwave", gradient("vaporwave", "#ff758c", "#ff7eb3")},
}

var filterRules = []filterRule{
	{"soft blur", chain("soft blur",
		px("blur", 2), num("sepia", 0.2), num("saturate", 1.2))},
	{"vhs noise", chain("vhs noise",
		num("saturate", 1.5), num("contrast", 1.1))},
	{"teal-orange cinematic", chain("teal-orange cinematic",
		num("sepia", 0.3), num("contrast", 1.1), num("brightness", 0.9), deg("hue-rotate", -15))},
	{"dreamy glow", chain("dreamy glow",
		num("brightness", 1.1), num("contrast", 1.1), num("saturate", 1.2), px("blur", 1))},
	{"dark noir", chain("dark noir",
		num("grayscale", 1), num("contrast", 1.3), num("brightness", 0.8))},
}

// Resolver resolves labels against the fixed rule tables using its theme for
// the fallback gradient. The zero value uses DefaultTheme.
type Resolver struct {
	theme Theme
}

// NewResolver builds a Resolver; empty theme colours fall back to DefaultTheme.
func NewResolver(theme Theme) Resolver {
	if strings.TrimSpace(theme.Primary) == "" {
		theme.Primary = DefaultTheme.Primary
	}
	if strings.TrimSpace(theme.Accent) == "" {
		theme.Accent = DefaultTheme.Accent
	}
	return Resolver{theme: theme}
}

// Theme returns the colours used for the fallback gradient.
func (r Resolver) Theme() Theme {
	if r.theme == (Theme{}) {
		return DefaultTheme
	}
	return r.theme
}

// Background maps a background style label to a gradient preset.
func (r Resolver) Background(label string) domain.BackgroundPreset {
	lower := strings.ToLower(label)
	for _, rule := range backgroundRules {
		if strings.Contains(lower, rule.phrase) {
			return rule.preset
		}
	}
	theme := r.Theme()
	return gradient(DefaultName, theme.Primary, theme.Accent)
}

// ImageFilter maps a filter suggestion label to a filter chain. Unknown
// labels yield the identity chain.
func (r Resolver) ImageFilter(label string) domain.FilterChain {
	lower := strings.ToLower(label)
	for _, rule := range filterRules {
		if strings.Contains(lower, rule.phrase) {
			return domain.FilterChain{
				Name:       rule.chain.Name,
				Primitives: slices.Clone(rule.chain.Primitives),
			}
		}
	}
	return domain.FilterChain{Name: DefaultName}
}

// Resolve computes the card style for a mood package. The image filter only
// applies when the user supplied a photo.
func (r Resolver) Resolve(pkg domain.MoodPackage, hasPhoto bool) domain.CardStyle {
	style := domain.CardStyle{
		Background: r.Background(pkg.BackgroundStyle),
		Filter:     domain.FilterChain{Name: DefaultName},
	}
	if hasPhoto {
		style.Filter = r.ImageFilter(pkg.FilterSuggestion)
	}
	return style
}

// ResolveBackground resolves a label with DefaultTheme.
func ResolveBackground(label string) domain.BackgroundPreset {
	return Resolver{}.Background(label)
}

// ResolveImageFilter resolves a filter label.
func ResolveImageFilter(label string) domain.FilterChain {
	return Resolver{}.ImageFilter(label)
}

// Catalogue lists the known phrases in priority order.
type Catalogue struct {
	Backgrounds []string `json:"backgrounds"`
	Filters     []string `json:"filters"`
}

// Phrases returns the rule tables' phrases in the order they are tested.
func Phrases() Catalogue {
	c := Catalogue{
		Backgrounds: make([]string, len(backgroundRules)),
		Filters:     make([]string, len(filterRules)),
	}
	for i, rule := range backgroundRules {
		c.Backgrounds[i] = rule.phrase
	}
	for i, rule := range filterRules {
		c.Filters[i] = rule.phrase
	}
	return c
}

func gradient(name, from, to string) domain.BackgroundPreset {
	return domain.BackgroundPreset{
		Name:  name,
		Angle: gradientAngle,
		From:  domain.ColorStop{Color: from, Position: 0},
		To:    domain.ColorStop{Color: to, Position: 100},
	}
}

func chain(name string, primitives ...domain.FilterPrimitive) domain.FilterChain {
	return domain.FilterChain{Name: name, Primitives: primitives}
}

func num(fn string, amount float64) domain.FilterPrimitive {
	return domain.FilterPrimitive{Func: fn, Amount: amount}
}

func px(fn string, amount float64) domain.FilterPrimitive {
	return domain.FilterPrimitive{Func: fn, Amount: amount, Unit: "px"}
}

func deg(fn string, amount float64) domain.FilterPrimitive {
	return domain.FilterPrimitive{Func: fn, Amount: amount, Unit: "deg"}
}
