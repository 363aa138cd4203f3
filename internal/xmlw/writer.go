// Package xmlw provides a minimal streaming XML writer.
//
// The writer exposes exactly the primitives the SVG device needs: open an
// element, add attributes to the element most recently opened, write
// character data, and close the innermost element. Elements with no
// content are self-closed. The writer keeps an element-name stack so that
// closing tags never need to be spelled out by the caller.
package xmlw

import (
	"io"
	"strings"
)

// Writer emits XML to an underlying io.Writer.
//
// Attributes may only be added while the most recently opened element's
// start tag is still open, i.e. before any child element or text is
// written. The first write error is retained and reported by Err; all
// subsequent calls become no-ops.
type Writer struct {
	w      io.Writer
	stack  []string
	inOpen bool
	err    error
}

// New creates a Writer targeting w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the XML prolog. Call it once, before any element.
func (w *Writer) WriteHeader() {
	w.writeString(`<?xml version="1.0" encoding="utf-8" ?>` + "\n")
}

// StartElement opens a new element with the given name.
func (w *Writer) StartElement(name string) {
	w.closeStartTag()
	w.writeString("<")
	w.writeString(name)
	w.stack = append(w.stack, name)
	w.inOpen = true
}

// Attr adds an attribute to the currently open start tag.
// Calling Attr when no start tag is open indicates a bug in the caller.
func (w *Writer) Attr(name, value string) {
	if !w.inOpen {
		panic("xmlw: attribute written outside of a start tag")
	}
	w.writeString(" ")
	w.writeString(name)
	w.writeString(`="`)
	w.writeString(escapeAttr(value))
	w.writeString(`"`)
}

// Text writes character data into the current element. The text is
// written verbatim: callers are responsible for escaping markup
// metacharacters.
func (w *Writer) Text(s string) {
	w.closeStartTag()
	w.writeString(s)
}

// EndElement closes the innermost open element, self-closing it when it
// has no content.
func (w *Writer) EndElement() {
	if len(w.stack) == 0 {
		panic("xmlw: EndElement without matching StartElement")
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.inOpen {
		w.inOpen = false
		w.writeString("/>")
		return
	}
	w.writeString("</")
	w.writeString(name)
	w.writeString(">")
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Err returns the first error encountered while writing, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) closeStartTag() {
	if w.inOpen {
		w.inOpen = false
		w.writeString(">")
	}
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.w, s); err != nil {
		w.err = err
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
