package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/danielgatis/go-ansiwrap"
)

type options struct {
	width    int
	indent   int
	maxLines int
	proper   bool
	preview  string
}

// run wraps everything read from in and writes the lines to out.
func run(logger *slog.Logger, opts options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")

	lines := wrapText(text, opts)
	logger.Debug("wrapped input",
		"bytes", len(data),
		"width", opts.width,
		"proper", opts.proper,
		"lines", len(lines))

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if opts.preview != "" {
		if err := writePreview(opts.preview, lines, opts.width); err != nil {
			return err
		}
		logger.Info("saved preview", "path", opts.preview)
	}
	return nil
}

// wrapText wraps text. In proper mode every physical line is wrapped on its
// own; otherwise blank lines separate paragraphs, which are refilled and
// kept apart by one empty line. A style left open at the end of a paragraph
// resumes at the start of the next one.
func wrapText(text string, opts options) []string {
	if opts.proper {
		return ansiwrap.WrapProper(text, opts.width)
	}

	wrapOpts := []ansiwrap.Option{ansiwrap.WithIndent(opts.indent)}
	if opts.maxLines > 0 {
		wrapOpts = append(wrapOpts, ansiwrap.WithMaxLines(opts.maxLines))
	}

	var lines []string
	state := ansiwrap.NewStyleState()
	for i, para := range paragraphs(text) {
		if i > 0 {
			lines = append(lines, "")
		}
		resume := state.Code()
		for _, m := range ansiwrap.Scan(para) {
			state.Consume(m.Code())
		}
		lines = append(lines, ansiwrap.Wrap(resume+para, opts.width, wrapOpts...)...)
	}
	return lines
}

// paragraphs splits text on lines that are blank once escapes are removed.
// Escapes found on those lines lead the next paragraph, or trail the last.
func paragraphs(text string) []string {
	var (
		paras   []string
		current []string
		pending strings.Builder
	)
	flush := func() {
		if len(current) > 0 {
			paras = append(paras, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(ansiwrap.StripColor(line)) == "" {
			flush()
			for _, m := range ansiwrap.Scan(line) {
				pending.WriteString(m.Text)
			}
			continue
		}
		if len(current) == 0 && pending.Len() > 0 {
			line = pending.String() + line
			pending.Reset()
		}
		current = append(current, line)
	}
	flush()

	if pending.Len() > 0 && len(paras) > 0 {
		paras[len(paras)-1] += pending.String()
	}
	return paras
}

func writePreview(path string, lines []string, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	defer f.Close()

	img := ansiwrap.PreviewWithConfig(lines, &ansiwrap.PreviewConfig{Columns: width})
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}
