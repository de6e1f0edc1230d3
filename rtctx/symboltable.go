/*
File    : PeanutScript/rtctx/symboltable.go
Package : rtctx

Package rtctx implements Peanut's three-table symbol resolution model
(spec.md §4.4): a process-wide locked table (root-level `scoped`
bindings), a process-wide global table (`var`/`let`/`strict` bindings
and built-ins), and a chain of per-call tables parented at the callee's
captured table. Grounded on the teacher's scope.Scope (scope/scope.go)
— LookUp/Bind/Copy map onto LookupChain/Set/Copy below —
but split into an Entry-carrying SymbolTable plus a separate Context so
that the locked/global singletons and the per-call chain can be threaded
independently, matching the distinct roles spec.md assigns them.
*/
package rtctx

import "github.com/gapples2/PeanutScript/value"

// Entry is one symbol-table binding: a value plus the declaration-kind
// metadata spec.md's SymbolTable glossary entry calls for.
type Entry struct {
	Value        value.Value
	IsVar        bool
	IsScoped     bool
	IsStrict     bool
	DeclaredType string // only meaningful when IsStrict
}

// SymbolTable is a name→Entry map with an optional parent. Lookup chains
// upward through Parent; Set always writes to the receiver, never a
// parent (mirroring the teacher's Bind, which is local-scope-only).
type SymbolTable struct {
	entries map[string]*Entry
	parent  *SymbolTable
}

// NewSymbolTable creates a table chained to parent (nil for a root
// table such as the locked or global singleton).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{entries: make(map[string]*Entry), parent: parent}
}

// Set binds name to entry in this table only.
func (t *SymbolTable) Set(name string, entry *Entry) {
	t.entries[name] = entry
}

// Remove deletes name from this table only.
func (t *SymbolTable) Remove(name string) {
	delete(t.entries, name)
}

// lookupLocal checks only this table, not its parent chain.
func (t *SymbolTable) lookupLocal(name string) (*Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// LookupChain walks this table and its parent chain, returning the
// first match (innermost wins, implementing shadowing).
func (t *SymbolTable) LookupChain(name string) (*Entry, bool) {
	if e, ok := t.lookupLocal(name); ok {
		return e, true
	}
	if t.parent != nil {
		return t.parent.LookupChain(name)
	}
	return nil, false
}

// Copy returns an independent table with the same entries and parent.
// Functions do not use it: they capture their defining context by
// reference.
func (t *SymbolTable) Copy() *SymbolTable {
	cp := NewSymbolTable(t.parent)
	for k, v := range t.entries {
		cp.entries[k] = v
	}
	return cp
}
