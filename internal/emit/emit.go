// Package emit provides the indent-aware sink the export path writes
// through. The emitter knows nothing about schemas or entities; it only
// balances tags and keeps the indentation honest.
package emit

import (
	"fmt"
	"strings"
)

// Writer accumulates an external-format document.
type Writer struct {
	sb     strings.Builder
	indent string
	open   []string
}

// NewWriter returns a writer using the given indent unit (default two
// spaces when empty).
func NewWriter(indent string) *Writer {
	if indent == "" {
		indent = "  "
	}
	return &Writer{indent: indent}
}

func (w *Writer) pad() {
	for range w.open {
		w.sb.WriteString(w.indent)
	}
}

// OpenTag starts a container element on its own line.
func (w *Writer) OpenTag(name string) {
	w.pad()
	w.sb.WriteString("<" + name + ">\n")
	w.open = append(w.open, name)
}

// CloseTag ends the innermost container. Closing a tag other than the
// innermost one is a programming error.
func (w *Writer) CloseTag(name string) {
	if len(w.open) == 0 || w.open[len(w.open)-1] != name {
		panic(fmt.Sprintf("emit: closing %q but innermost open tag is %v", name, w.open))
	}
	w.open = w.open[:len(w.open)-1]
	w.pad()
	w.sb.WriteString("</" + name + ">\n")
}

// Leaf writes a one-line element with text content. The caller escapes the
// text if needed.
func (w *Writer) Leaf(name, text string) {
	w.pad()
	w.sb.WriteString("<" + name + ">" + text + "</" + name + ">\n")
}

// Comment writes an explanatory marker line, used for "nothing here" notes
// on absent optional sub-records.
func (w *Writer) Comment(text string) {
	w.pad()
	w.sb.WriteString("<!-- " + text + " -->\n")
}

// Prolog writes the document header line. Call before any tag is opened.
func (w *Writer) Prolog() {
	w.sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
}

// String returns the document built so far. All tags must be closed.
func (w *Writer) String() string {
	if len(w.open) != 0 {
		panic(fmt.Sprintf("emit: document finished with open tags %v", w.open))
	}
	return w.sb.String()
}
