// Package ir defines the fully type-checked program representation for sksl.
//
// The IR is the form a program takes after parsing and semantic analysis are
// complete: every name is resolved to a Symbol, every expression carries a
// concrete Type, and lexical scoping is materialized as a tree of Scopes.
// It is the representation that dehydrated builtin modules are decoded into
// and that code generators consume.
//
// # Structure
//
// A Program contains:
//   - Kind and Version: the program flavor and minimum language version
//   - Elements: the ordered top-level declarations
//   - Symbols: the program's symbol table, chained up to the builtin root
//   - Inputs: flags describing what the program consumes at runtime
//
// Expressions, statements, and program elements are closed variant sets,
// dispatched by type switches over marker-method interfaces.
//
// # Ownership
//
// A Scope exclusively owns the symbols constructed within it and merely
// references symbols visible from ancestor scopes or the shared builtin
// root. The builtin root is built once per process and must be treated as
// immutable once published; see the builtins package.
package ir
