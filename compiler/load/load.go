// Package load reads GraphQL schemas into the generator model. Schemas are
// read either from SDL documents, parsed and validated by gqlparser, or from
// the JSON result of an introspection query.
package load

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlselect/compiler/gen"
)

// DefaultDeprecationReason is the reason of a @deprecated directive that
// does not carry one.
const DefaultDeprecationReason = "No longer supported"

// Files loads a schema from paths. A single ".json" file is read as an
// introspection result; otherwise every file is an SDL source and together
// they form one schema.
func Files(paths ...string) (*gen.Schema, error) {
	if len(paths) == 0 {
		return nil, gen.NewSchemaError("", "", "no schema files", nil)
	}
	if len(paths) == 1 && strings.EqualFold(filepath.Ext(paths[0]), ".json") {
		data, err := os.ReadFile(paths[0])
		if err != nil {
			return nil, fmt.Errorf("read introspection %s: %w", paths[0], err)
		}
		return Introspection(data)
	}
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", p, err)
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(data)})
	}
	return SDL(sources...)
}

// introspection reports whether name is reserved for introspection.
func introspection(name string) bool {
	return strings.HasPrefix(name, "__")
}
