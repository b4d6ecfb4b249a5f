package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// maxHeadingLevel is the deepest heading HTML defines (<h6>).
const maxHeadingLevel = 6

// Options tunes the conversion. The zero value reproduces the plain
// output of the reference converter: no escaping, blank lines kept as
// empty paragraphs, paragraph text left untouched.
type Options struct {
	// EscapeHTML escapes <, >, &, ' and " in emitted text.
	EscapeHTML bool `yaml:"escape_html" json:"escape_html" toml:"escape_html"`

	// SkipBlankLines drops lines that are empty after trimming whitespace
	// instead of emitting <p></p>.
	SkipBlankLines bool `yaml:"skip_blank_lines" json:"skip_blank_lines" toml:"skip_blank_lines"`

	// TrimSpace trims surrounding whitespace from paragraph text.
	// Heading text is always trimmed.
	TrimSpace bool `yaml:"trim_space" json:"trim_space" toml:"trim_space"`
}

// Stats counts what a conversion produced.
type Stats struct {
	// Lines is the number of input lines read, including skipped ones.
	Lines int

	// Headings is the number of <hN> elements written.
	Headings int

	// Paragraphs is the number of <p> elements written.
	Paragraphs int

	// Passthrough is the number of lines copied through unchanged
	// (seven or more leading '#').
	Passthrough int

	// Bytes is the number of bytes written to the output.
	Bytes int64
}

// Convert reads Markdown from r and writes HTML to w.
//
// Every input line yields at most one output line, and each output line
// is terminated by '\n'. An input with no emitted lines still produces a
// single '\n'.
func Convert(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	var stats Stats

	reader := bufio.NewReader(r)
	cw := &countingWriter{w: bufio.NewWriter(w)}

	// Lines may be arbitrarily long; ReadString has no token size limit.
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			stats.Lines++
			if out, ok := convertLine(trimEOL(line), opts, &stats); ok {
				if _, werr := io.WriteString(cw, out+"\n"); werr != nil {
					return stats, fmt.Errorf("write html: %w", werr)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read markdown: %w", err)
		}
	}

	if cw.n == 0 {
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return stats, fmt.Errorf("write html: %w", err)
		}
	}

	if err := cw.w.Flush(); err != nil {
		return stats, fmt.Errorf("write html: %w", err)
	}
	stats.Bytes = cw.n
	return stats, nil
}

// convertLine maps one input line (without its line ending) to its HTML
// form. The boolean is false when the line is skipped entirely.
func convertLine(line string, opts Options, stats *Stats) (string, bool) {
	if opts.SkipBlankLines && strings.TrimSpace(line) == "" {
		return "", false
	}

	if level := HeadingLevel(line); level > 0 {
		if level > maxHeadingLevel {
			stats.Passthrough++
			return escape(line, opts), true
		}
		stats.Headings++
		text := strings.TrimSpace(line[level:])
		return fmt.Sprintf("<h%d>%s</h%d>", level, escape(text, opts), level), true
	}

	text := line
	if opts.TrimSpace {
		text = strings.TrimSpace(text)
	}
	stats.Paragraphs++
	return "<p>" + escape(text, opts) + "</p>", true
}

// HeadingLevel returns the length of the run of '#' characters at the
// start of line, or 0 if line does not start with '#'. Values above 6
// are returned as-is; callers decide how to treat them.
func HeadingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func escape(s string, opts Options) string {
	if opts.EscapeHTML {
		return html.EscapeString(s)
	}
	return s
}

// countingWriter tracks how many bytes reached the buffered writer.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
