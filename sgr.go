package ansiwrap

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// StyleState tracks the net SGR style of a stream of codes, starting from
// "no style". SGR bodies are decoded by an ansicode.Decoder; the state is
// not safe for concurrent use.
type StyleState struct {
	style   Style
	decoder *ansicode.Decoder
}

// NewStyleState returns a state with no active style.
func NewStyleState() *StyleState {
	s := &StyleState{}
	s.decoder = ansicode.NewDecoder(&sgrHandler{state: s})
	return s
}

// Consume applies one SGR body (the text between "ESC[" and "m").
// The EL body "K" and malformed bodies leave the state unchanged. An
// extended color missing its selector or values makes the body malformed.
func (s *StyleState) Consume(code string) {
	if code == eraseLineBody {
		return
	}
	groups, ok := sgrGroups(code)
	if !ok {
		return
	}
	for _, g := range groups {
		s.decoder.Write([]byte("\x1b[" + g + "m"))
	}
}

// Code returns one SGR sequence reproducing the active style from a clean
// terminal, or "" when no style is active.
func (s *StyleState) Code() string {
	return s.style.Code()
}

// Active reports whether any style is active.
func (s *StyleState) Active() bool {
	return s.Code() != ""
}

// Style returns a snapshot of the active style.
func (s *StyleState) Style() Style {
	return s.style
}

// Reset returns the state to "no style".
func (s *StyleState) Reset() {
	s.style = Style{}
}

// isSGRBody accepts only parameter bytes: digits and the ';' and ':'
// separators. Anything else would make the decoder dispatch a non-SGR
// sequence.
func isSGRBody(code string) bool {
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < '0' || c > '9') && c != ';' && c != ':' {
			return false
		}
	}
	return true
}

// sgrGroups splits a body into self-contained attributes: one parameter,
// one parameter with its ':' subparameters, or an extended color with its
// selector and values. The decoder reads parameters as one flat list, so
// each group is written on its own to keep "4" from taking the next
// parameter as its style and colors from borrowing or defaulting values.
func sgrGroups(code string) ([]string, bool) {
	if !isSGRBody(code) {
		return nil, false
	}

	params := strings.Split(code, ";")
	groups := make([]string, 0, len(params))
	for i := 0; i < len(params); i++ {
		p := params[i]

		if subs := strings.Split(p, ":"); len(subs) > 1 {
			g, ok := subparamGroup(subs)
			if !ok {
				return nil, false
			}
			groups = append(groups, g)
			continue
		}

		if !isExtendedColor(p) {
			groups = append(groups, p)
			continue
		}

		n, ok := extendedColorLen(params[i+1:])
		if !ok {
			return nil, false
		}
		groups = append(groups, strings.Join(params[i:i+1+n], ";"))
		i += n
	}
	return groups, true
}

// subparamGroup normalizes a ':'-separated parameter. Colors become their
// ';' form, dropping the optional color space id of "38:2:id:r:g:b".
// "4" keeps its style subparameter; other parameters drop theirs.
func subparamGroup(subs []string) (string, bool) {
	head := subs[0]
	if head == "4" {
		return head + ":" + subs[1], true
	}
	if !isExtendedColor(head) {
		return head, true
	}

	values := subs[1:]
	if len(values) == 5 && values[0] == "2" {
		values = append([]string{"2"}, values[2:]...)
	}
	n, ok := extendedColorLen(values)
	if !ok || n != len(values) {
		return "", false
	}
	return head + ";" + strings.Join(values, ";"), true
}

func isExtendedColor(p string) bool {
	return p == "38" || p == "48" || p == "58"
}

// extendedColorLen returns how many parameters after 38/48/58 belong to the
// color: "5" and an index, or "2" and three components, each 0-255.
func extendedColorLen(rest []string) (int, bool) {
	if len(rest) == 0 {
		return 0, false
	}

	var n int
	switch rest[0] {
	case "5":
		n = 2
	case "2":
		n = 4
	default:
		return 0, false
	}
	if len(rest) < n {
		return 0, false
	}
	for _, v := range rest[1:n] {
		if x, err := strconv.Atoi(v); err != nil || x > 255 {
			return 0, false
		}
	}
	return n, true
}

// closingGroups are the attributes that only turn something off.
var closingGroups = map[string]bool{
	"": true, "0": true, "4:0": true,
	"21": true, "22": true, "23": true, "24": true, "25": true,
	"27": true, "28": true, "29": true,
	"39": true, "49": true, "59": true,
}

// isClosingCode reports whether a body can only remove styling: EL, or an
// SGR body made of resets alone.
func isClosingCode(code string) bool {
	if code == eraseLineBody {
		return true
	}
	groups, ok := sgrGroups(code)
	if !ok {
		return false
	}
	for _, g := range groups {
		if !closingGroups[g] {
			return false
		}
	}
	return true
}

// sgrHandler receives decoded SGR attributes. Only well-formed SGR
// sequences are written to its decoder, so SetTerminalCharAttribute is the
// only callback ever invoked; the embedded interface stays nil.
type sgrHandler struct {
	ansicode.Handler
	state *StyleState
}

// SetTerminalCharAttribute applies one decoded SGR attribute.
func (h *sgrHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	h.state.apply(attr)
}

func (s *StyleState) apply(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.style = Style{}

	case ansicode.CharAttributeBold:
		s.style.SetFlag(StyleBold)

	case ansicode.CharAttributeDim:
		s.style.SetFlag(StyleDim)

	case ansicode.CharAttributeItalic:
		s.style.SetFlag(StyleItalic)

	case ansicode.CharAttributeUnderline:
		s.setUnderline(StyleUnderline)

	case ansicode.CharAttributeDoubleUnderline:
		s.setUnderline(StyleDoubleUnderline)

	case ansicode.CharAttributeCurlyUnderline:
		s.setUnderline(StyleCurlyUnderline)

	case ansicode.CharAttributeDottedUnderline:
		s.setUnderline(StyleDottedUnderline)

	case ansicode.CharAttributeDashedUnderline:
		s.setUnderline(StyleDashedUnderline)

	case ansicode.CharAttributeBlinkSlow:
		s.style.SetFlag(StyleBlinkSlow)

	case ansicode.CharAttributeBlinkFast:
		s.style.SetFlag(StyleBlinkFast)

	case ansicode.CharAttributeReverse:
		s.style.SetFlag(StyleReverse)

	case ansicode.CharAttributeHidden:
		s.style.SetFlag(StyleHidden)

	case ansicode.CharAttributeStrike:
		s.style.SetFlag(StyleStrike)

	case ansicode.CharAttributeCancelBold:
		s.style.ClearFlag(StyleBold)

	case ansicode.CharAttributeCancelBoldDim:
		s.style.ClearFlag(StyleBold | StyleDim)

	case ansicode.CharAttributeCancelItalic:
		s.style.ClearFlag(StyleItalic)

	case ansicode.CharAttributeCancelUnderline:
		s.style.ClearFlag(StyleAnyUnderline)

	case ansicode.CharAttributeCancelBlink:
		s.style.ClearFlag(StyleBlinkSlow | StyleBlinkFast)

	case ansicode.CharAttributeCancelReverse:
		s.style.ClearFlag(StyleReverse)

	case ansicode.CharAttributeCancelHidden:
		s.style.ClearFlag(StyleHidden)

	case ansicode.CharAttributeCancelStrike:
		s.style.ClearFlag(StyleStrike)

	case ansicode.CharAttributeForeground:
		s.style.Fg = attrColor(attr)

	case ansicode.CharAttributeBackground:
		s.style.Bg = attrColor(attr)

	case ansicode.CharAttributeUnderlineColor:
		s.style.UnderlineColor = attrColor(attr)
	}
}

// setUnderline switches to one underline variant, dropping the others.
func (s *StyleState) setUnderline(flag StyleFlags) {
	s.style.ClearFlag(StyleAnyUnderline)
	s.style.SetFlag(flag)
}

// attrColor converts the color carried by attr. Default colors (SGR 39,
// 49, 59) come back as nil so they clear the attribute instead of setting it.
func attrColor(attr ansicode.TerminalCharAttribute) color.Color {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		return IndexedColor{Index: int(attr.IndexedColor.Index)}
	}

	if attr.NamedColor != nil {
		if name := int(*attr.NamedColor); name >= 0 && name < 16 {
			return NamedColor{Name: name}
		}
	}

	return nil
}
