//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/danielgatis/go-ansiwrap"
)

func main() {
	// Register all exported functions
	js.Global().Set("AnsiWrap", js.ValueOf(map[string]interface{}{
		// Measuring
		"stripColor":     js.FuncOf(stripColor),
		"ansiLen":        js.FuncOf(ansiLen),
		"ansiLenUnicode": js.FuncOf(ansiLenUnicode),

		// Wrapping
		"wrap":       js.FuncOf(wrap),
		"fill":       js.FuncOf(fill),
		"shorten":    js.FuncOf(shorten),
		"wrapProper": js.FuncOf(wrapProper),

		// Styles
		"terminateLines": js.FuncOf(terminateLines),
		"spans":          js.FuncOf(spans),
	}))

	// Keep the program running
	select {}
}

// ============================================================================
// Measuring
// ============================================================================

func stripColor(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	return ansiwrap.StripColor(args[0].String())
}

func ansiLen(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return 0
	}
	return ansiwrap.AnsiLen(args[0].String())
}

func ansiLenUnicode(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return 0
	}
	return ansiwrap.AnsiLenUnicode(args[0].String())
}

// ============================================================================
// Wrapping
// ============================================================================

// wrapArgs reads (text, width, options?) where options is a plain object
// with optional indent, initialIndent, subsequentIndent, maxLines,
// placeholder, breakLongWords and breakOnHyphens fields.
func wrapArgs(args []js.Value) (string, int, []ansiwrap.Option) {
	text := ""
	if len(args) >= 1 {
		text = args[0].String()
	}

	width := ansiwrap.DefaultWidth
	if len(args) >= 2 && args[1].Type() == js.TypeNumber {
		width = args[1].Int()
	}

	var opts []ansiwrap.Option
	if len(args) >= 3 && args[2].Type() == js.TypeObject {
		opts = optionsFromJS(args[2])
	}
	return text, width, opts
}

func optionsFromJS(o js.Value) []ansiwrap.Option {
	var opts []ansiwrap.Option

	if v := o.Get("initialIndent"); v.Type() == js.TypeString {
		opts = append(opts, ansiwrap.WithInitialIndent(v.String()))
	}
	if v := o.Get("subsequentIndent"); v.Type() == js.TypeString {
		opts = append(opts, ansiwrap.WithSubsequentIndent(v.String()))
	}
	switch v := o.Get("indent"); v.Type() {
	case js.TypeNumber:
		opts = append(opts, ansiwrap.WithIndent(v.Int()))
	case js.TypeString:
		opts = append(opts, ansiwrap.WithIndent(v.String()))
	}
	if v := o.Get("maxLines"); v.Type() == js.TypeNumber {
		opts = append(opts, ansiwrap.WithMaxLines(v.Int()))
	}
	if v := o.Get("placeholder"); v.Type() == js.TypeString {
		opts = append(opts, ansiwrap.WithPlaceholder(v.String()))
	}
	if v := o.Get("breakLongWords"); v.Type() == js.TypeBoolean {
		opts = append(opts, ansiwrap.WithBreakLongWords(v.Bool()))
	}
	if v := o.Get("breakOnHyphens"); v.Type() == js.TypeBoolean {
		opts = append(opts, ansiwrap.WithBreakOnHyphens(v.Bool()))
	}
	return opts
}

func wrap(_ js.Value, args []js.Value) interface{} {
	text, width, opts := wrapArgs(args)
	return linesToJS(ansiwrap.Wrap(text, width, opts...))
}

func fill(_ js.Value, args []js.Value) interface{} {
	text, width, opts := wrapArgs(args)
	return ansiwrap.Fill(text, width, opts...)
}

func shorten(_ js.Value, args []js.Value) interface{} {
	text, width, opts := wrapArgs(args)
	return ansiwrap.Shorten(text, width, opts...)
}

func wrapProper(_ js.Value, args []js.Value) interface{} {
	text, width, _ := wrapArgs(args)
	return linesToJS(ansiwrap.WrapProper(text, width))
}

// ============================================================================
// Styles
// ============================================================================

func terminateLines(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return []interface{}{}
	}

	arr := args[0]
	lines := make([]string, arr.Length())
	for i := range lines {
		lines[i] = arr.Index(i).String()
	}
	return linesToJS(ansiwrap.TerminateLines(lines))
}

func spans(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return []interface{}{}
	}

	result := []interface{}{}
	for _, span := range ansiwrap.Spans(args[0].String()) {
		result = append(result, map[string]interface{}{
			"text": span.Text,
			"code": span.Style.Code(),
		})
	}
	return result
}

func linesToJS(lines []string) []interface{} {
	result := make([]interface{}, len(lines))
	for i, line := range lines {
		result[i] = line
	}
	return result
}
