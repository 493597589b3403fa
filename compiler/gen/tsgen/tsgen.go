// Package tsgen provides a small fragment model for emitting TypeScript
// declarations. Names are validated when a declaration is rendered so the
// generator fails instead of producing source that cannot parse.
package tsgen

import (
	"fmt"
	"regexp"
	"strings"
)

// Indentation used for one nesting level.
const indent = "  "

var identRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reserved holds the ECMAScript reserved words (including strict mode ones)
// that cannot name a declaration.
var reserved = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "implements": {},
	"import": {}, "in": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {},
	"void": {}, "while": {}, "with": {}, "yield": {},
}

// InvalidNameError is returned for a name that cannot be emitted.
type InvalidNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("tsgen: invalid name %q: %s", e.Name, e.Reason)
}

// Ident validates a property or parameter name.
func Ident(name string) error {
	if !identRE.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "not an identifier"}
	}
	return nil
}

// DeclName validates the name of an exported declaration.
func DeclName(name string) error {
	if err := Ident(name); err != nil {
		return err
	}
	if _, ok := reserved[name]; ok {
		return &InvalidNameError{Name: name, Reason: "reserved word"}
	}
	return nil
}

// Quote returns s as a double-quoted string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Deprecated returns a JSDoc block carrying reason under a @deprecated tag.
// The reason is kept verbatim, including whitespace, except that a closing
// "*/" is broken up so the comment stays well formed.
func Deprecated(reason string) string {
	reason = strings.ReplaceAll(reason, "*/", "*\\/")
	lines := strings.Split(reason, "\n")
	var b strings.Builder
	b.WriteString("/**\n")
	for i, l := range lines {
		b.WriteString(" *")
		if i == 0 {
			b.WriteString(" @deprecated")
		}
		if l != "" {
			b.WriteString(" ")
			b.WriteString(l)
		}
		b.WriteString("\n")
	}
	b.WriteString(" */")
	return b.String()
}

// LineComment returns a single-line comment.
func LineComment(text string) string {
	return "// " + strings.ReplaceAll(text, "\n", " ")
}

// Writer buffers indented source text.
type Writer struct {
	b     strings.Builder
	depth int
}

// Indent increases the nesting level.
func (w *Writer) Indent() { w.depth++ }

// Dedent decreases the nesting level.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Line writes s on its own line at the current nesting level.
func (w *Writer) Line(s string) {
	if s != "" {
		w.b.WriteString(strings.Repeat(indent, w.depth))
		w.b.WriteString(s)
	}
	w.b.WriteByte('\n')
}

// Linef is like Line with fmt.Sprintf formatting.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Lines writes every line of text at the current nesting level, keeping
// the relative indentation of the text.
func (w *Writer) Lines(text string) {
	for _, l := range strings.Split(text, "\n") {
		w.Line(l)
	}
}

// String returns the buffered text without the final newline.
func (w *Writer) String() string {
	return strings.TrimSuffix(w.b.String(), "\n")
}

// Import is a named import declaration.
type Import struct {
	Names []string
	From  string
}

// Render renders the declaration.
func (d *Import) Render() (string, error) {
	var w Writer
	w.Line("import {")
	w.Indent()
	for _, n := range d.Names {
		if err := DeclName(n); err != nil {
			return "", err
		}
		w.Line(n + ",")
	}
	w.Dedent()
	w.Linef("} from %s;", Quote(d.From))
	return w.String(), nil
}

// EnumMember is one member of an Enum.
type EnumMember struct {
	Name  string
	Value string
}

// Enum is an exported string enum.
type Enum struct {
	Name    string
	Members []EnumMember
}

// Render renders the declaration.
func (d *Enum) Render() (string, error) {
	if err := DeclName(d.Name); err != nil {
		return "", err
	}
	if len(d.Members) == 0 {
		return "export enum " + d.Name + " {}", nil
	}
	var w Writer
	w.Linef("export enum %s {", d.Name)
	w.Indent()
	for _, m := range d.Members {
		if err := Ident(m.Name); err != nil {
			return "", err
		}
		w.Linef("%s = %s,", m.Name, Quote(m.Value))
	}
	w.Dedent()
	w.Line("}")
	return w.String(), nil
}

// Interface is an exported interface. Members are property signatures
// without the trailing semicolon, e.g. "id: string".
type Interface struct {
	Name    string
	Extends []string
	Members []string
}

// Render renders the declaration.
func (d *Interface) Render() (string, error) {
	if err := DeclName(d.Name); err != nil {
		return "", err
	}
	head := "export interface " + d.Name
	if len(d.Extends) > 0 {
		for _, e := range d.Extends {
			if err := DeclName(e); err != nil {
				return "", err
			}
		}
		head += " extends " + strings.Join(d.Extends, ", ")
	}
	if len(d.Members) == 0 {
		return head + " {}", nil
	}
	var w Writer
	w.Line(head + " {")
	w.Indent()
	for _, m := range d.Members {
		w.Line(m + ";")
	}
	w.Dedent()
	w.Line("}")
	return w.String(), nil
}

// Const is an exported object literal constant. Entries are rendered
// object members, possibly spanning several lines, each ending in a comma.
type Const struct {
	Name    string
	Entries []string
}

// Render renders the declaration.
func (d *Const) Render() (string, error) {
	if err := DeclName(d.Name); err != nil {
		return "", err
	}
	if len(d.Entries) == 0 {
		return "export const " + d.Name + " = {};", nil
	}
	var w Writer
	w.Linef("export const %s = {", d.Name)
	w.Indent()
	for _, e := range d.Entries {
		w.Lines(e)
	}
	w.Dedent()
	w.Line("};")
	return w.String(), nil
}
