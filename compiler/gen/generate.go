package gen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/gqlselect/compiler/gen/tsgen"
)

// runtimeImports are the helper types every generated module depends on.
var runtimeImports = []string{
	"Argument",
	"Value",
	"Field",
	"Operation",
	"Selection",
	"SelectionSet",
	"Variable",
}

// Generator assembles the selection-builder module of a schema.
type Generator struct {
	schema *Schema
	cfg    *Config
}

// Result is the output of a generation run.
type Result struct {
	// Source is the formatted module.
	Source string
	// Warnings holds the advisory diagnostics of the run, in emission order.
	Warnings []string
}

// NewGenerator creates a generator for s. A nil cfg uses the defaults.
func NewGenerator(s *Schema, cfg *Config) (*Generator, error) {
	if s == nil {
		return nil, NewSchemaError("", "", "nil schema", nil)
	}
	return &Generator{schema: s, cfg: cfg.withDefaults()}, nil
}

// Generate is the convenience function that builds a Config from opts and
// runs a Generator over s.
func Generate(ctx context.Context, s *Schema, opts ...Option) (*Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	g, err := NewGenerator(s, cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}

// Generate emits every declaration, concatenates them in the fixed module
// order and passes the result once through the configured formatter.
// A formatter failure fails the whole run and no source is returned.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	var (
		res    = &Result{}
		enums  []string
		inputs []string
		unions []string
		shapes []string
	)
	for _, t := range g.schema.Types {
		if introspection(t.Name) {
			continue
		}
		switch t.Kind {
		case KindEnum:
			out, err := g.emitEnum(t)
			if err != nil {
				return nil, err
			}
			enums = append(enums, out)
		case KindInputObject:
			out, err := g.emitInputObject(t)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, out)
		case KindUnion:
			out, warning := g.emitUnion(t)
			unions = append(unions, out)
			g.warn(res, warning)
		case KindInterface:
			out, err := g.emitInterface(t)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, out)
		case KindObject:
			out, err := g.emitObject(t)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, out)
		}
	}
	imports, err := render("", &tsgen.Import{Names: runtimeImports, From: g.cfg.RuntimeImport})
	if err != nil {
		return nil, err
	}
	var fragments []string
	if h := header(g.cfg.Header); h != "" {
		fragments = append(fragments, h)
	}
	fragments = append(fragments, imports)
	fragments = append(fragments, enums...)
	fragments = append(fragments, inputs...)
	fragments = append(fragments, unions...)
	fragments = append(fragments, shapes...)
	fragments = append(fragments, g.entryPoints()...)
	src := strings.Join(fragments, "\n\n") + "\n"

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := g.cfg.Formatter.Format(ctx, src, g.cfg.Target)
	if err != nil {
		var fe *FormatError
		if !errors.As(err, &fe) {
			fe = NewFormatError(fmt.Sprintf("%T", g.cfg.Formatter), "", err)
		}
		fe.Source = src
		return nil, fe
	}
	res.Source = out
	return res, nil
}

func (g *Generator) warn(res *Result, msg string) {
	res.Warnings = append(res.Warnings, msg)
	if g.cfg.Logger != nil {
		g.cfg.Logger.Warn(msg)
	}
}

// operations returns the enabled entry points and their root types.
func (g *Generator) operations() [][2]string {
	var ops [][2]string
	if g.schema.QueryType != "" {
		ops = append(ops, [2]string{"query", g.schema.QueryType})
	}
	if g.schema.MutationType != "" && g.cfg.featureEnabled(FeatureMutation) {
		ops = append(ops, [2]string{"mutation", g.schema.MutationType})
	}
	if g.schema.SubscriptionType != "" && g.cfg.featureEnabled(FeatureSubscription) {
		ops = append(ops, [2]string{"subscription", g.schema.SubscriptionType})
	}
	return ops
}

func (g *Generator) entryPoints() []string {
	var out []string
	for _, op := range g.operations() {
		out = append(out, operationEntry(op[0], op[1]))
	}
	return out
}

// operationEntry renders the generic entry point building an Operation of
// kind op from a selector callback against root.
func operationEntry(op, root string) string {
	var w tsgen.Writer
	w.Linef("export const %s = <T extends Array<Selection>>(", op)
	w.Indent()
	w.Line("name: string,")
	w.Linef("select: (t: typeof %s) => T", root)
	w.Dedent()
	w.Linef("): Operation<SelectionSet<T>> => new Operation(name, %s, new SelectionSet(select(%s)));", tsgen.Quote(op), root)
	return w.String()
}

// checkNames fails when two declarations of the module would share an
// exported name.
func (g *Generator) checkNames() error {
	owners := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, ok := owners[name]; ok {
			return NewSchemaError(owner, "", fmt.Sprintf("exported name %q is already declared by %s", name, prev), nil)
		}
		owners[name] = owner
		return nil
	}
	for _, name := range runtimeImports {
		if err := claim(name, "runtime import"); err != nil {
			return err
		}
	}
	for _, op := range g.operations() {
		if err := claim(op[0], op[0]+" entry point"); err != nil {
			return err
		}
	}
	for _, t := range g.schema.Types {
		if introspection(t.Name) {
			continue
		}
		var names []string
		switch t.Kind {
		case KindEnum, KindInputObject:
			names = []string{t.Name}
		case KindObject, KindInterface:
			names = []string{interfacePrefix + t.Name, t.Name}
		}
		for _, name := range names {
			if err := claim(name, fmt.Sprintf("%s %q", strings.ToLower(t.Kind.String()), t.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// introspection reports whether name is reserved for introspection.
func introspection(name string) bool {
	return strings.HasPrefix(name, "__")
}

// header turns text into a comment block. Line comments and block comments
// opened by the header itself are kept as is; every other line becomes a
// line comment. A block left open is closed.
func header(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var (
		lines   = strings.Split(text, "\n")
		inBlock bool
	)
	for i, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		switch t := strings.TrimSpace(l); {
		case inBlock:
			lines[i] = l
			inBlock = !strings.Contains(t, "*/")
		case strings.HasPrefix(t, "/*"):
			lines[i] = l
			inBlock = !strings.Contains(t[2:], "*/")
		case strings.HasPrefix(t, "//"):
			lines[i] = l
		case t == "":
			lines[i] = "//"
		default:
			lines[i] = "// " + l
		}
	}
	if inBlock {
		lines = append(lines, " */")
	}
	return strings.Join(lines, "\n")
}
