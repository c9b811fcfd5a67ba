package ooxml

import (
	"encoding/xml"
	"strings"
)

const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// EMUPerInch and EMUPerPoint convert layout units to English Metric Units.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Inches converts a length in inches to EMU.
func Inches(in float64) int64 {
	return int64(in*EMUPerInch + 0.5)
}

// Escape returns s with XML special characters escaped, safe for both text
// nodes and attribute values. Characters not allowed in XML 1.0 are replaced.
func Escape(s string) string {
	var b strings.Builder
	// EscapeText only fails when the writer does; strings.Builder never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Writer is a strings.Builder with shortcuts for the element soup OOXML
// parts are made of.
type Writer struct {
	strings.Builder
}

// Raw appends markup verbatim.
func (w *Writer) Raw(s string) *Writer {
	w.WriteString(s)
	return w
}

// Text appends escaped character data.
func (w *Writer) Text(s string) *Writer {
	w.WriteString(Escape(s))
	return w
}

// Bytes returns the accumulated markup.
func (w *Writer) Bytes() []byte {
	return []byte(w.String())
}
