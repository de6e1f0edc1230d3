/*
File    : PeanutScript/rtctx/context.go
Package : rtctx
*/
package rtctx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gapples2/PeanutScript/position"
	"github.com/gapples2/PeanutScript/value"
)

// Context is an execution context: a display name (for tracebacks), an
// optional parent context and the position it was entered from, and the
// symbol table local to this context. Grounded on spec.md §3's Context
// glossary entry; generalizes the teacher's flat *scope.Scope parent
// chain by separating "context" (the traceback/call-chain unit) from
// "symbol table" (the name-resolution unit), since a function call
// introduces a new context whose table is parented at the *captured*
// table rather than the caller's table.
//
// Output/Input carry the program's I/O streams down the context chain so
// built-ins (print, input, cls) reach the right destination even when
// several programs run concurrently against independent streams (the TCP
// server mode's one-goroutine-per-connection design, replsrv's per-client
// sockets) — a package-level "current stdout" would make one connection's
// output bleed into another's. Input is pre-wrapped in a *bufio.Reader
// (built once, at the root, and shared unchanged down the Child chain) so
// successive `input()`/`inputNumber()` calls within one program see a
// consistent read cursor instead of each re-wrapping the raw stream and
// discarding whatever the previous wrapper had already buffered past the
// last newline.
type Context struct {
	Name           string
	Parent         *Context
	ParentEntryPos *position.Position
	Table          *SymbolTable
	Output         io.Writer
	Input          *bufio.Reader

	locked *SymbolTable
	global *SymbolTable
}

// NewRootContext creates the top-level context a program runs in. locked
// and global are the two process-wide singleton tables; they are shared
// (not copied) by every descendant context, including interpolation
// sub-runs, per spec.md §5. output/input default to os.Stdout/os.Stdin
// when nil.
func NewRootContext(name string, locked, global *SymbolTable, output io.Writer, input io.Reader) *Context {
	if output == nil {
		output = os.Stdout
	}
	if input == nil {
		input = os.Stdin
	}
	return &Context{
		Name:   name,
		Table:  NewSymbolTable(nil),
		Output: output,
		Input:  bufio.NewReader(input),
		locked: locked,
		global: global,
	}
}

// Child creates a new execution context for a function call: its table
// is parented at capturedTable (the callee's captured symbol table, not
// the caller's), and its Context.Parent is the callee's captured
// context — both per spec.md §4.5 step 4. Output/Input are inherited
// unchanged from c (the captured context the call is made through); a
// function call never redirects I/O.
func (c *Context) Child(name string, capturedTable *SymbolTable, entryPos position.Position) *Context {
	return &Context{
		Name:           name,
		Parent:         c,
		ParentEntryPos: &entryPos,
		Table:          NewSymbolTable(capturedTable),
		Output:         c.Output,
		Input:          c.Input,
		locked:         c.locked,
		global:         c.global,
	}
}

func (c *Context) DisplayName() string { return c.Name }

func (c *Context) Global() *SymbolTable { return c.global }
func (c *Context) Locked() *SymbolTable { return c.locked }

// IsRoot reports whether this context has no parent — the condition
// spec.md §4.4 uses to decide whether a `scoped` assignment goes into
// the current table or the locked table.
func (c *Context) IsRoot() bool { return c.Parent == nil }

// Lookup resolves NAME per spec.md §4.4: walk the table chain, then (at
// root) the locked table, then fall back to the global table.
func (c *Context) Lookup(name string) (value.Value, *value.RTError) {
	if e, ok := c.Table.LookupChain(name); ok {
		return e.Value, nil
	}
	if c.IsRoot() {
		if e, ok := c.locked.lookupLocal(name); ok {
			return e.Value, nil
		}
	}
	if e, ok := c.global.lookupLocal(name); ok {
		return e.Value, nil
	}
	return nil, &value.RTError{Details: fmt.Sprintf("'%s' is not defined or not in this scope.", name)}
}

// AssignVar implements `var`/`let`: always binds in the global table.
func (c *Context) AssignVar(name string, v value.Value) {
	c.global.Set(name, &Entry{Value: v, IsVar: true})
}

// AssignScoped implements `scoped`: binds in the current context's
// table, unless the current context is root, in which case it binds in
// the locked table instead and a warning is returned for the caller to
// surface (spec.md §4.4's "Scoped is redundant in the Global Context!").
func (c *Context) AssignScoped(name string, v value.Value) (warning string) {
	entry := &Entry{Value: v, IsScoped: true}
	if c.IsRoot() {
		c.locked.Set(name, entry)
		return "Scoped is redundant in the Global Context!"
	}
	c.Table.Set(name, entry)
	return ""
}

// BindLoopVar sets name directly in the current context's table, bypassing
// the var/scoped/strict assignment rules. It binds `for`'s loop variable
// (per spec.md §9's design note, written straight into the current table —
// deliberately inconsistent with function-body scoping, and preserved
// as-is rather than "fixed") and also a called function's parameters in
// its new per-call table.
func (c *Context) BindLoopVar(name string, v value.Value) {
	c.Table.Set(name, &Entry{Value: v})
}

// AssignStrict implements `strict TYPE NAME = E`: binds in the global
// table, recording the declared type. A redeclaration with a different
// declared type is rejected (spec.md §4.4; the parser also rejects this
// earlier via its own strictTypes bookkeeping, so this is the runtime's
// matching belt-and-suspenders check for strict assignments reached by
// paths the parser doesn't see statically, e.g. inside `run`/`use`).
func (c *Context) AssignStrict(name, declaredType string, v value.Value) *value.RTError {
	if existing, ok := c.global.lookupLocal(name); ok && existing.IsStrict && existing.DeclaredType != declaredType {
		return &value.RTError{Details: fmt.Sprintf("'%s' was already declared strict %s, cannot redeclare as %s", name, existing.DeclaredType, declaredType)}
	}
	c.global.Set(name, &Entry{Value: v, IsStrict: true, DeclaredType: declaredType})
	return nil
}
