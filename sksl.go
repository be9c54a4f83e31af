// Package sksl decodes dehydrated shader modules back into typed programs.
//
// A dehydrated module is the compact binary form of a program that was
// parsed and type-checked ahead of time. Rehydrating one skips the whole
// front end: the byte stream directly rebuilds the typed program tree and
// its symbol tables, with builtin types and intrinsics resolving to scopes
// shared by every program of the same kind.
//
// Example usage:
//
//	prog, err := sksl.Rehydrate(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, elem := range prog.Elements {
//	    // inspect typed program elements
//	}
//
// The ir package holds the program representation, the builtins package
// the shared root scopes, and the rehydrate package the decoder itself.
package sksl

import (
	"github.com/gogpu/sksl/builtins"
	"github.com/gogpu/sksl/ir"
	"github.com/gogpu/sksl/rehydrate"
)

// Version is the binary format version this package decodes.
const Version = rehydrate.Version

// Rehydrate decodes a dehydrated module into a program, resolving builtin
// names against the standard root scope for the program's kind.
func Rehydrate(data []byte) (*ir.Program, error) {
	return RehydrateWithRoots(data, builtins.RootScope)
}

// RehydrateWithRoots decodes a dehydrated module against caller-provided
// builtin root scopes. Programs share whatever symbols the provider
// returns; see builtins.RootScope for the standard set.
func RehydrateWithRoots(data []byte, roots rehydrate.RootProvider) (*ir.Program, error) {
	r, err := rehydrate.New(data, roots)
	if err != nil {
		return nil, err
	}

	return r.Rehydrate()
}
