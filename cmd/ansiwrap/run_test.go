package main

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/lmittmann/tint"
)

func discardLogger() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{NoColor: true}))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		opts  options
		input string
		want  string
	}{
		{
			name:  "paragraphs refilled",
			opts:  options{width: 7},
			input: "aaa bbb ccc\n\nddd\neee\n",
			want:  "aaa bbb\nccc\n\nddd eee\n",
		},
		{
			name:  "indent",
			opts:  options{width: 8, indent: 2},
			input: "aaa bbb ccc",
			want:  "  aaa\n  bbb\n  ccc\n",
		},
		{
			name:  "max lines",
			opts:  options{width: 12, maxLines: 2},
			input: "one two three four five",
			want:  "one two\nthree [...]\n",
		},
		{
			name:  "styles terminated",
			opts:  options{width: 4},
			input: "\x1b[31mred text\x1b[0m",
			want:  "\x1b[31mred\x1b[0m\n\x1b[31mtext\x1b[0m\n",
		},
		{
			name:  "styles carried across paragraphs",
			opts:  options{width: 10},
			input: "\x1b[31maaa\n\nbbb\x1b[0m",
			want:  "\x1b[31maaa\x1b[0m\n\n\x1b[31mbbb\x1b[0m\n",
		},
		{
			name:  "style opened on a blank line",
			opts:  options{width: 10},
			input: "aaa\n\x1b[1m\nbbb\x1b[0m",
			want:  "aaa\n\n\x1b[1mbbb\x1b[0m\n",
		},
		{
			name:  "proper keeps line breaks",
			opts:  options{width: 4, proper: true},
			input: "\x1b[31mred text\x1b[0m\nnext\n",
			want:  "\x1b[31mred\x1b[0m\n\x1b[31mtext\x1b[0m\nnext\n",
		},
		{
			name:  "empty input",
			opts:  options{width: 10},
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(discardLogger(), tt.opts, strings.NewReader(tt.input), &out)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestParagraphs(t *testing.T) {
	got := paragraphs("a\nb\n\n  \n\x1b[0m\nc")
	assert.Equal(t, []string{"a\nb", "\x1b[0mc"}, got)

	got = paragraphs("\x1b[1ma\n\x1b[0m")
	assert.Equal(t, []string{"\x1b[1ma\x1b[0m"}, got)
}

func TestRunWritesPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")

	var out bytes.Buffer
	err := run(discardLogger(), options{width: 10, preview: path}, strings.NewReader("\x1b[1mhello\x1b[0m world"), &out)
	assert.NoError(t, err)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	assert.NoError(t, err)
	assert.Equal(t, 10*7, cfg.Width)
	assert.Equal(t, 2*13, cfg.Height)
}
