/*
File    : PeanutScript/interp/errors.go
Package : interp
*/
package interp

import (
	"fmt"
	"strings"

	"github.com/gapples2/PeanutScript/position"
	"github.com/gapples2/PeanutScript/rtctx"
	"github.com/gapples2/PeanutScript/value"
)

// RuntimeError pairs an RTError with the position it occurred at and the
// context chain active at that point, so a traceback can be rendered per
// spec.md §7 ("Runtime errors additionally prepend a traceback of
// `  File <fn>, line <L>, in <display>` frames").
type RuntimeError struct {
	*value.RTError
	PosStart position.Position
	PosEnd   position.Position
	Ctx      *rtctx.Context
}

func newRuntimeError(err *value.RTError, start, end position.Position, ctx *rtctx.Context) *RuntimeError {
	return &RuntimeError{RTError: err, PosStart: start, PosEnd: end, Ctx: ctx}
}

// Error renders the full `<name>: <details>\nTrace: File <fn>, line <L>\n\n
// <source-line>\n<caret-span>` form, with the traceback frames prepended.
func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.traceback())
	b.WriteString(fmt.Sprintf("Runtime Error: %s\n", e.Details))
	b.WriteString(fmt.Sprintf("Trace: File %s, line %d\n\n", e.PosStart.FileName, e.PosStart.Line+1))
	b.WriteString(position.CaretSpan(e.PosStart, e.PosEnd))
	return b.String()
}

func (e *RuntimeError) traceback() string {
	var frames []string
	ctx := e.Ctx
	pos := e.PosStart
	for ctx != nil {
		frames = append(frames, fmt.Sprintf("  File %s, line %d, in %s", pos.FileName, pos.Line+1, ctx.DisplayName()))
		if ctx.ParentEntryPos == nil {
			break
		}
		pos = *ctx.ParentEntryPos
		ctx = ctx.Parent
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	if len(frames) == 0 {
		return ""
	}
	return "Traceback (most recent call last):\n" + strings.Join(frames, "\n") + "\n"
}
