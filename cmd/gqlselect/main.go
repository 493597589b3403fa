// Command gqlselect generates typed GraphQL selection builders for TypeScript.
package main

import "github.com/syssam/gqlselect/internal/cli"

func main() {
	cli.Execute()
}
