package gen

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Formatter formats the assembled module source. It is invoked once per
// generation run and a failure aborts the run.
type Formatter interface {
	Format(ctx context.Context, src string, target Target) (string, error)
}

// FormatterByName returns a built-in formatter: "builtin" (or empty),
// "prettier" or "none".
func FormatterByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "builtin":
		return BuiltinFormatter{}, nil
	case "prettier":
		return PrettierFormatter{}, nil
	case "none":
		return NopFormatter{}, nil
	default:
		return nil, NewConfigError("Formatter", name, "unknown formatter; use builtin, prettier or none")
	}
}

// NopFormatter returns the source unchanged.
type NopFormatter struct{}

// Format implements Formatter.
func (NopFormatter) Format(_ context.Context, src string, _ Target) (string, error) {
	return src, nil
}

// BuiltinFormatter normalizes whitespace and verifies that brackets outside
// strings and comments are balanced. Indentation is left to the emitters.
type BuiltinFormatter struct{}

// Format implements Formatter.
func (BuiltinFormatter) Format(_ context.Context, src string, _ Target) (string, error) {
	if err := checkBalance(src); err != nil {
		return "", NewFormatError("builtin", "unbalanced source", err)
	}
	var (
		b       strings.Builder
		blank   bool
		started bool
	)
	for _, l := range strings.Split(src, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			blank = started
			continue
		}
		if blank {
			b.WriteByte('\n')
			blank = false
		}
		started = true
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// checkBalance scans src and reports the first mismatched bracket or
// unterminated string or comment.
func checkBalance(src string) error {
	var (
		stack []byte
		line  = 1
	)
	closer := map[byte]byte{'(': ')', '[': ']', '{': '}'}
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\n':
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return fmt.Errorf("line %d: unterminated block comment", line)
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += end + 3
		case c == '"' || c == '\'' || c == '`':
			start := line
			for i++; i < len(src) && src[i] != c; i++ {
				switch src[i] {
				case '\\':
					i++
				case '\n':
					if c != '`' {
						return fmt.Errorf("line %d: unterminated string literal", start)
					}
					line++
				}
			}
			if i >= len(src) {
				return fmt.Errorf("line %d: unterminated string literal", start)
			}
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, closer[c])
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return fmt.Errorf("line %d: unexpected %q", line, c)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed brackets, expecting %q", string(stack[len(stack)-1]))
	}
	return nil
}

// PrettierFormatter pipes the source through the prettier CLI.
type PrettierFormatter struct {
	// Path of the prettier executable. Defaults to "prettier" in PATH.
	Path string
}

// Format implements Formatter.
func (p PrettierFormatter) Format(ctx context.Context, src string, target Target) (string, error) {
	bin := p.Path
	if bin == "" {
		bin = "prettier"
	}
	trailing := "es5"
	if target.TrailingCommas() {
		trailing = "all"
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--parser", "typescript", "--trailing-comma", trailing)
	cmd.Stdin = strings.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", NewFormatError("prettier", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}
