package ir

// Scope is a lexical symbol table. Scopes form a tree through Parent;
// name lookup walks from a scope to the root. A scope exclusively owns the
// symbols constructed in it and may additionally make symbols owned by
// ancestors (or by the shared builtin root) visible without owning them.
type Scope struct {
	Parent *Scope

	// Builtin marks scopes belonging to a builtin module; symbols
	// constructed in them inherit builtin-ness.
	Builtin bool

	symbols map[string]Symbol
	order   []string
	owned   []Symbol
}

// NewScope creates an empty scope chained to parent.
func NewScope(parent *Scope, builtin bool) *Scope {
	return &Scope{
		Parent:  parent,
		Builtin: builtin,
		symbols: make(map[string]Symbol),
	}
}

// Find resolves name in this scope or the nearest ancestor declaring it.
// It returns nil when no scope on the chain declares the name.
func (s *Scope) Find(name string) Symbol {
	for t := s; t != nil; t = t.Parent {
		if sym, ok := t.symbols[name]; ok {
			return sym
		}
	}

	return nil
}

// Root returns the outermost ancestor scope.
func (s *Scope) Root() *Scope {
	t := s
	for t.Parent != nil {
		t = t.Parent
	}

	return t
}

// Insert makes sym visible in this scope without taking ownership of it.
// Inserting a function declaration over a visible declaration of the same
// name chains the two as overloads, with the new declaration in front.
func (s *Scope) Insert(sym Symbol) {
	name := sym.Name()

	existing, shadowing := s.symbols[name]
	if shadowing {
		if fn, ok := sym.(*FunctionDeclaration); ok {
			if prev, ok := existing.(*FunctionDeclaration); ok {
				fn.NextOverload = prev
			}
		}
	} else {
		s.order = append(s.order, name)
	}

	s.symbols[name] = sym
}

// TakeOwnership records sym as exclusively owned by this scope. Ownership
// is separate from visibility; symbols become findable only via Insert.
func (s *Scope) TakeOwnership(sym Symbol) {
	s.owned = append(s.owned, sym)
}

// Owned returns the symbols this scope exclusively owns, in construction
// order.
func (s *Scope) Owned() []Symbol {
	return s.owned
}

// Len returns the number of names visible directly in this scope, not
// counting ancestors.
func (s *Scope) Len() int {
	return len(s.symbols)
}

// Names returns the visible names in insertion order.
func (s *Scope) Names() []string {
	return s.order
}
