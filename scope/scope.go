/*
File    : pylox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the lexical environment chain the interpreter
// and resolver share: a flat table of bindings plus a parent pointer.
// Lox only has "var", so there is no const/let bookkeeping to carry.
// Closures share their defining *Scope by reference rather than copying
// it, so later assignments to an outer variable are seen by every
// closure over it, per the language's closure semantics.
package scope

import (
	"github.com/akashmaji946/pylox/objects"
)

// Scope is one lexical environment: a flat table of bindings plus a
// pointer to the enclosing scope. The global scope has a nil Parent.
type Scope struct {
	Variables map[string]objects.GoMixObject
	Parent    *Scope
}

// NewScope creates a scope chained to parent. Pass nil to create the
// global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.GoMixObject),
		Parent:    parent,
	}
}

// Define binds varName to obj in this scope, overwriting any existing
// binding of the same name in this scope only. Used both for "var"
// declarations and for binding call arguments to parameters.
func (s *Scope) Define(varName string, obj objects.GoMixObject) {
	s.Variables[varName] = obj
}

// Get looks up varName starting in this scope and walking Parent links
// until found. Returns ok=false if the name is never bound anywhere in
// the chain -- the caller turns that into an "undefined variable" runtime
// error since it names the offending token.
func (s *Scope) Get(varName string) (objects.GoMixObject, bool) {
	if obj, ok := s.Variables[varName]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.Get(varName)
	}
	return nil, false
}

// Assign updates varName's binding in place, searching outward from this
// scope. It does not create a new binding: assigning to an undeclared
// name fails, matching the language's distinction between declaration
// ("var x = 1;") and assignment ("x = 1;").
func (s *Scope) Assign(varName string, obj objects.GoMixObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// ancestor walks up distance Parent links. The resolver guarantees
// distance is always a valid hop count for a name it resolved, so a nil
// result here would indicate a resolver bug, not a user error.
func (s *Scope) ancestor(distance int) *Scope {
	scope := s
	for i := 0; i < distance; i++ {
		scope = scope.Parent
	}
	return scope
}

// GetAt reads varName from the scope exactly distance hops up the chain,
// the fast path the resolver's binding-depth analysis enables: no
// searching, just one map lookup at a known depth.
func (s *Scope) GetAt(distance int, varName string) (objects.GoMixObject, bool) {
	obj, ok := s.ancestor(distance).Variables[varName]
	return obj, ok
}

// AssignAt writes varName in the scope exactly distance hops up the
// chain, the assignment counterpart to GetAt.
func (s *Scope) AssignAt(distance int, varName string, obj objects.GoMixObject) {
	s.ancestor(distance).Variables[varName] = obj
}
