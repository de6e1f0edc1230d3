/*
File    : PeanutScript/builtin/io.go
Package : builtin

print/printReturn/input/inputNumber/cls, grounded on the teacher's
print/println (std/common.go) for the writer-plus-flush shape, and on
original_source's execute_print/execute_input/execute_input_int for the
exact observable behavior (a value's display form; the reference
implementation's `print` body actually only builds and returns that
display string without ever writing it anywhere — a dead end this
rewrite resolves by making `print` the one that writes, and `printReturn`
the one that only builds and returns the string, matching the two names'
English meaning; see DESIGN.md).

Each of these reads/writes through the calling *rtctx.Context's
Output/Input rather than a package-level stream, so concurrent programs
(the TCP server's one-goroutine-per-connection sessions) never cross
wires.
*/
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

func displayString(v value.Value) string {
	if arr, ok := v.(*value.Array); ok {
		return fmt.Sprintf("[%s]", arrayInner(arr))
	}
	return v.ToString()
}

func arrayInner(arr *value.Array) string {
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		parts[i] = e.ToString()
	}
	return strings.Join(parts, ", ")
}

func contextOf(callCtx interface{}) (*rtctx.Context, *value.RTError) {
	ctx, ok := callCtx.(*rtctx.Context)
	if !ok || ctx == nil {
		return nil, &value.RTError{Details: "built-in called outside a running program"}
	}
	return ctx, nil
}

func print(args []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	ctx, err := contextOf(callCtx)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(ctx.Output, displayString(args[0]))
	return noReturn, nil
}

func printReturn(args []value.Value, _ interface{}) (value.Value, *value.RTError) {
	return value.NewString(displayString(args[0])), nil
}

func input(_ []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	ctx, err := contextOf(callCtx)
	if err != nil {
		return nil, err
	}
	line, readErr := readLine(ctx)
	if readErr != nil {
		return nil, &value.RTError{Details: fmt.Sprintf("input failed: %v", readErr)}
	}
	return value.NewString(line), nil
}

// inputNumber re-prompts until the entered line contains no letters,
// matching original_source's containsAny(text, LETTERS) retry loop, then
// parses it as a Number (int if it parses as one, else float).
func inputNumber(_ []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	ctx, err := contextOf(callCtx)
	if err != nil {
		return nil, err
	}
	for {
		line, readErr := readLine(ctx)
		if readErr != nil {
			return nil, &value.RTError{Details: fmt.Sprintf("input failed: %v", readErr)}
		}
		if containsLetter(line) {
			fmt.Fprintln(ctx.Output, "Input must be a Number!")
			continue
		}
		if i, convErr := strconv.ParseInt(line, 10, 64); convErr == nil {
			return value.NewInt(i), nil
		}
		if f, convErr := strconv.ParseFloat(line, 64); convErr == nil {
			return value.NewFloat(f), nil
		}
		fmt.Fprintln(ctx.Output, "Input must be a Number!")
	}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func readLine(ctx *rtctx.Context) (string, error) {
	line, err := ctx.Input.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// cls clears the terminal via the same raw ANSI escape the teacher's
// repl.go uses for direct-terminal writes.
func cls(_ []value.Value, callCtx interface{}) (value.Value, *value.RTError) {
	ctx, err := contextOf(callCtx)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(ctx.Output, "\x1b[H\x1b[2J")
	return noReturn, nil
}
