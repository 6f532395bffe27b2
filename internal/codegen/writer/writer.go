// Package writer provides the indentation-aware buffer language generators
// emit source text through.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source, applying the current indentation
// prefix at the start of every line.
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a writer using indentString for one indentation level.
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline.
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef writes a formatted string without adding a newline.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline.
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character.
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// BlankLine adds an empty line unless the previous line was already blank.
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.Newline()
	}
}

// WriteDocComment emits a documentation comment in the language's block
// style: opener and closer lines around the text, linePrefix before each
// line. Passing ("/**", " * ", " */") yields a javadoc block; ("", "/// ",
// "") yields C# doc comments. Empty text emits nothing.
func (w *Writer) WriteDocComment(opener, linePrefix, closer, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if opener != "" {
		w.WriteLine(opener)
	}
	for _, line := range strings.Split(text, "\n") {
		w.WriteLine(strings.TrimRight(linePrefix+strings.TrimSpace(line), " "))
	}
	if closer != "" {
		w.WriteLine(closer)
	}
}

// String returns the generated source as a string.
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated source as a byte slice.
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}
