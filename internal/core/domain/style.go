package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorStop is one stop of a linear gradient.
type ColorStop struct {
	Color    string
	Position int // percent
}

// BackgroundPreset is a two-stop linear gradient.
type BackgroundPreset struct {
	Name  string
	Angle int // degrees
	From  ColorStop
	To    ColorStop
}

// CSS renders the preset as a CSS background value.
func (b BackgroundPreset) CSS() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s %d%%, %s %d%%)",
		b.Angle, b.From.Color, b.From.Position, b.To.Color, b.To.Position)
}

// FilterPrimitive is a single CSS filter function such as blur(2px).
type FilterPrimitive struct {
	Func   string
	Amount float64
	Unit   string
}

func (f FilterPrimitive) String() string {
	return f.Func + "(" + strconv.FormatFloat(f.Amount, 'f', -1, 64) + f.Unit + ")"
}

// FilterChain is an ordered list of filter primitives. An empty chain is the
// identity filter.
type FilterChain struct {
	Name       string
	Primitives []FilterPrimitive
}

// IsIdentity reports whether the chain leaves the image unchanged.
func (c FilterChain) IsIdentity() bool {
	return len(c.Primitives) == 0
}

// Amount returns the amount of the first primitive named fn.
func (c FilterChain) Amount(fn string) (float64, bool) {
	for _, p := range c.Primitives {
		if p.Func == fn {
			return p.Amount, true
		}
	}
	return 0, false
}

// Grayscale reports whether the chain desaturates the image completely.
func (c FilterChain) Grayscale() bool {
	v, ok := c.Amount("grayscale")
	return ok && v >= 1
}

// CSS renders the chain as a CSS filter value; the identity chain is "".
func (c FilterChain) CSS() string {
	parts := make([]string, len(c.Primitives))
	for i, p := range c.Primitives {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// CardStyle is everything a renderer needs to composite a mood card.
type CardStyle struct {
	Background BackgroundPreset
	Filter     FilterChain
}
