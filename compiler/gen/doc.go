// Package gen generates a typed query-selection builder module, written in
// TypeScript, from a GraphQL schema.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Schema source (SDL or introspection JSON)
//	        ↓
//	   compiler/load (loader)
//	        ↓
//	   Schema (TypeDef, Field, TypeRef)
//	        ↓
//	   Generator: one emitter per type kind
//	        ↓
//	   Formatter
//	        ↓
//	   Generated module (generated.ts)
//
// # Key Types
//
//   - Schema: the validated type map, in deterministic type-map order
//   - TypeDef: a tagged variant over the schema type kinds
//   - TypeRef: Named, List and NonNull wrappers, classified by Classify
//   - Config: target, runtime import, header, features and formatter
//   - Generator: assembles the module
//
// # Module Layout
//
// Declarations are emitted in a fixed order: the runtime imports, enums,
// input objects, union placeholders, then interfaces and objects in
// type-map order, and finally the operation entry points. Every object and
// interface produces an "I"-prefixed shape interface plus a selector
// constant named after the type.
//
// The query entry point is built against the schema's query root and is
// omitted when the schema declares none. The mutation and subscription
// entry points also need their feature flag.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: precondition violations of the input schema
//   - ConfigError: invalid options
//   - FormatError: the formatter rejected the module
//   - GenerationError: the output could not be written
//
// Example error handling:
//
//	res, err := gen.Generate(ctx, schema)
//	if err != nil {
//	    if gen.IsFormatError(err) {
//	        // inspect err.(*gen.FormatError).Source
//	    }
//	    return err
//	}
//	for _, w := range res.Warnings {
//	    fmt.Println(w)
//	}
//
// Union types are not supported. They produce a placeholder comment and a
// warning; the run continues.
package gen
