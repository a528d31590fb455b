package ansiwrap

import (
	"image/color"
	"strings"
)

// StyleFlags is a bitmask of SGR rendering attributes.
type StyleFlags uint16

const (
	StyleBold StyleFlags = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleDoubleUnderline
	StyleCurlyUnderline
	StyleDottedUnderline
	StyleDashedUnderline
	StyleBlinkSlow
	StyleBlinkFast
	StyleReverse
	StyleHidden
	StyleStrike
)

// StyleAnyUnderline covers every underline variant; at most one is set at a time.
const StyleAnyUnderline = StyleUnderline | StyleDoubleUnderline | StyleCurlyUnderline | StyleDottedUnderline | StyleDashedUnderline

// flagParams lists the SGR parameter that turns each flag on, in emission order.
var flagParams = []struct {
	flag  StyleFlags
	param string
}{
	{StyleBold, "1"},
	{StyleDim, "2"},
	{StyleItalic, "3"},
	{StyleUnderline, "4"},
	{StyleDoubleUnderline, "4:2"},
	{StyleCurlyUnderline, "4:3"},
	{StyleDottedUnderline, "4:4"},
	{StyleDashedUnderline, "4:5"},
	{StyleBlinkSlow, "5"},
	{StyleBlinkFast, "6"},
	{StyleReverse, "7"},
	{StyleHidden, "8"},
	{StyleStrike, "9"},
}

// Style is the net effect of a sequence of SGR codes.
// A nil color means the terminal default. The zero value is "no style".
type Style struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          StyleFlags
}

// HasFlag returns true if the specified flag is set.
func (s Style) HasFlag(flag StyleFlags) bool {
	return s.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (s *Style) SetFlag(flag StyleFlags) {
	s.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (s *Style) ClearFlag(flag StyleFlags) {
	s.Flags &^= flag
}

// IsZero reports whether no attribute or color is set.
func (s Style) IsZero() bool {
	return s.Flags == 0 && s.Fg == nil && s.Bg == nil && s.UnderlineColor == nil
}

// Equal reports whether both styles render identically.
func (s Style) Equal(other Style) bool {
	return s.Code() == other.Code()
}

// Code returns one SGR sequence that reproduces s from a clean terminal,
// or "" for the zero style.
func (s Style) Code() string {
	var params []string
	for _, fp := range flagParams {
		if s.HasFlag(fp.flag) {
			params = append(params, fp.param)
		}
	}
	params = append(params, colorParams(s.Fg, 30, 90, "38")...)
	params = append(params, colorParams(s.Bg, 40, 100, "48")...)
	params = append(params, colorParams(s.UnderlineColor, 0, 0, "58")...)

	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
