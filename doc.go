// Package ansiwrap wraps text that contains ANSI escape sequences.
//
// Escape sequences take no room on screen, but an ordinary text wrapper
// counts their bytes and breaks lines too early. Styles also leak: a color
// opened on one line and closed on the next bleeds into whatever is printed
// beside the first line. This package measures only the visible columns
// and closes every style at the end of each line, reopening it at the start
// of the next.
//
// # Quick Start
//
//	text := "\x1b[31mthe quick brown fox\x1b[0m jumps over the lazy dog"
//	for _, line := range ansiwrap.Wrap(text, 20) {
//	    fmt.Println(line)
//	}
//
// Each line is self-contained: the first ends with "\x1b[0m" and the second
// starts with "\x1b[31m" because the red run crosses the break.
//
// # Measuring
//
// [AnsiLenUnicode] returns the terminal column width of a string: escape
// sequences count as zero, East Asian wide characters and emoji as two,
// combining marks as zero. [AnsiLen] counts code points instead, and [Len]
// accepts any value, measuring strings and falling back to the element
// count of slices, arrays, maps and channels.
//
//	ansiwrap.AnsiLenUnicode("\x1b[1m中文\x1b[0m") // 4
//	ansiwrap.AnsiLen("\x1b[1m中文\x1b[0m")        // 2
//
// [StripColor] removes the sequences outright and [Scan] reports where they are.
//
// # Wrapping
//
// [Wrap], [Fill] and [Shorten] follow the familiar greedy text wrapping
// algorithm, configured with functional options:
//
//	ansiwrap.Wrap(text, 40,
//	    ansiwrap.WithIndent(4),               // both indents, as spaces
//	    ansiwrap.WithIndents("- ", "  "),     // or one per line kind
//	    ansiwrap.WithMaxLines(3),
//	    ansiwrap.WithPlaceholder(" [...]"),
//	)
//
// Indents may be strings or space counts. A width <= 0 falls back to
// [DefaultWidth]. [WithMeasurer] swaps the width function, for example to
// [CodePoints].
//
// [WrapProper] keeps line breaks already in the text and wraps each physical
// line on its own, putting each escape sequence back exactly where it was
// in the visible text rather than where the wrapper's chunking left it.
//
// # Styles
//
// [TerminateLines] is the step that makes lines self-contained and can be
// used on its own. It tracks SGR state with a [StyleState], which decodes
// sequences through github.com/danielgatis/go-ansicode and reduces any run
// of codes to a single [Style]. [Style.Code] renders a style back as one
// sequence.
//
//	s := ansiwrap.NewStyleState()
//	s.Consume("1")
//	s.Consume("31")
//	s.Consume("22")
//	s.Code() // "\x1b[31m"
//
// [Spans] splits a line into runs of text sharing one style.
//
// # Preview
//
// [Preview] and [PreviewWithConfig] render wrapped lines to an image, which
// is handy for checking output without a terminal:
//
//	img := ansiwrap.Preview(ansiwrap.Wrap(text, 40))
//	png.Encode(f, img)
//
// # Concurrency
//
// All functions are safe for concurrent use. A [StyleState] is not.
package ansiwrap
