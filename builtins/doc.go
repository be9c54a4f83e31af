// Package builtins constructs the builtin root scopes that rehydrated
// programs resolve against.
//
// Each program kind gets one root scope holding the core types (scalars,
// vectors, matrices), the intrinsic functions, and the kind's predeclared
// variables. Scopes are built once and shared: every program of the same
// kind resolves builtin names to the same symbol pointers, so type
// identity checks hold across programs.
package builtins
