/*
File    : PeanutScript/builtin/scripts.go
Package : builtin

run/use/read, grounded on original_source's execute_run/execute_use/
execute_read (open, read, and for run/use re-enter the top-level `run`
pipeline against the same global symbol table). peanutfile.Load resolves
the ".peanut" suffix and handles open/read/close; interp.RunIO re-enters
the lex-parse-evaluate pipeline against the shared locked/global tables
interp.Init installed, so declarations made by a loaded script land in
the same global table the caller sees (spec.md §6: "run/use both load and
execute a source file"). RunIO (rather than Run) is used so the loaded
script inherits the calling context's own Output/Input pair instead of
the process's default stdio — see rtctx.Context's I/O-threading doc.

builtin importing interp (rather than the reverse) is intentional: interp
never imports builtin, so there is no cycle, and it lets run/use reuse the
single already-correct pipeline entry point instead of re-implementing
lex/parse/evaluate here.
*/
package builtin

import (
	"fmt"

	"github.com/gapples2/PeanutScript/interp"
	"github.com/gapples2/PeanutScript/peanutfile"
	"github.com/gapples2/PeanutScript/value"
)

func runScript(args []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	return loadAndRun(args, callCtx)
}

func useScript(args []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	return loadAndRun(args, callCtx)
}

// loadAndRun re-enters the pipeline via interp.RunIO, inheriting the
// caller's own Output/Input pair rather than the process's real stdio, so
// a script loaded with run/use from inside a TCP-server session still
// prints to and reads from that session's socket.
func loadAndRun(args []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a string"}
	}
	ctx, rtErr := contextOf(callCtx)
	if rtErr != nil {
		return nil, rtErr
	}
	fn, source, err := peanutfile.Load(s.Value)
	if err != nil {
		return nil, &value.RTError{Details: fmt.Sprintf("failed to load script %q: %v", fn, err)}
	}
	if _, err := interp.RunIO(fn, source, ctx.Output, ctx.Input); err != nil {
		return nil, &value.RTError{Details: fmt.Sprintf("failed to finish executing script %q: %v", fn, err)}
	}
	return noReturn, nil
}

func readScript(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, &value.RTError{Details: "argument must be a string"}
	}
	_, source, err := peanutfile.Load(s.Value)
	if err != nil {
		return nil, &value.RTError{Details: fmt.Sprintf("failed to load script %q: %v", s.Value, err)}
	}
	return value.NewString(source), nil
}
