// Package markdown converts Markdown text to HTML one line at a time.
//
// The conversion is deliberately small: ATX headings (one to six leading
// '#' characters) become <h1>..<h6> elements, lines with seven or more
// leading '#' characters are passed through, and every other line becomes
// a <p> element. Lists, emphasis, links and code blocks are not recognised.
//
// Convert works on any io.Reader/io.Writer pair. ConvertFile adds the file
// handling used by the CLI: it reads the input path, holds an advisory
// lock (github.com/gofrs/flock) on "<output>.lock" while writing, and
// writes the output path.
package markdown
