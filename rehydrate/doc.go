// Package rehydrate decodes dehydrated program binaries back into typed
// programs.
//
// A dehydrated module is a compact byte stream produced from an already
// type-checked program: a version header, a string table, and a command
// stream that rebuilds symbols, scopes, statements, and expressions in the
// order the encoder emitted them. Decoding is all-or-nothing: any
// malformed input aborts the whole decode with an error, and a stream that
// decodes but leaves trailing bytes is rejected too.
//
// Rehydrated programs resolve builtin names against a caller-provided root
// scope, so types and intrinsics are shared between every program decoded
// against the same roots.
package rehydrate
