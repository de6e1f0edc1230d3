/*
File    : PeanutScript/replsrv/replsrv.go
Package : replsrv

Interactive REPL and TCP REPL server, grounded on teacher's repl/repl.go
(banner, readline-driven input loop, colored result/error output) and
main/main.go's startServer/handleClient (accept loop, one goroutine per
connection). Generalized from Go-Mix's single global evaluator to
Peanut's `run(fn, text)` pipeline per spec.md §5/§6.

Concurrency note: spec.md §5's server mode spawns one goroutine per
accepted connection, each meant to run against its own fresh global/locked
tables. interp's pipeline keeps those tables as process-wide singletons
installed by interp.Init (spec.md §4.4/§9's explicit "process-wide
singletons" design), so two sessions cannot safely hold distinct table
sets live as the process-wide ones at the same instant. This package
resolves that tension the way spec.md §5 already licenses ("single-
threaded per run" — concurrency exists only at the connection-acceptance
boundary, never within one program's evaluation): runMu serializes the
Init+RunIO pair so only one session's tables are ever the live
process-wide ones during an actual evaluation, while connection
accept/banner/readline/disconnect all stay fully concurrent. See
DESIGN.md.
*/
package replsrv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gapples2/PeanutScript/builtin"
	"github.com/gapples2/PeanutScript/interp"
	"github.com/gapples2/PeanutScript/rtctx"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// runMu serializes the fresh-tables-install + evaluate pair across every
// concurrently running session (interactive or TCP), since interp.Init
// installs process-wide singleton tables. See package doc.
var runMu sync.Mutex

// Session is one REPL instance: a banner plus the info lines shown at
// startup, mirroring the teacher's Repl struct field-for-field.
type Session struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewSession mirrors the teacher's NewRepl constructor.
func NewSession(banner, version, author, line, license, prompt string) *Session {
	return &Session{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (s *Session) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", s.Line)
	greenColor.Fprintf(w, "%s\n", s.Banner)
	blueColor.Fprintf(w, "%s\n", s.Line)
	yellowColor.Fprintln(w, "Version: "+s.Version+" | Author: "+s.Author+" | License: "+s.License)
	blueColor.Fprintf(w, "%s\n", s.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Peanut!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", s.Line)
}

// Start runs an interactive local REPL using chzyer/readline for line
// editing and history, exactly as the teacher's Start does. The session
// gets its own fresh global/locked tables (builtin.NewTables), built once
// up front and re-installed with interp.Init before each line under runMu
// (see executeWithRecovery). `input()`/`inputNumber()` read from the
// process's real stdin — readline already owns the terminal, so a script
// line that also wants to read more input reads past whatever readline
// has not yet consumed.
func (s *Session) Start(output io.Writer) {
	s.PrintBannerInfo(output)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	locked, global := builtin.NewTables()

	for {
		line, err := rl.Readline()
		if err != nil {
			output.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			output.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)
		s.executeWithRecovery(output, os.Stdin, line, locked, global)
	}
}

// StartConn runs a REPL session over a raw connection (the TCP server
// mode): one line of input per read, no readline editing (a bare socket
// has no terminal to drive it), grounded on main.go's handleClient using
// conn as both reader and writer but adapted away from the teacher's
// readline.New(prompt) call, which would have silently read from the
// server process's own stdin rather than the socket — unusable for a
// real network client, so this rewrite reads lines directly off conn
// instead. Each connection gets its own fresh tables and its own buffered
// reader, so a script's `input()` calls consume that same connection's
// bytes rather than the process's stdin or another client's socket.
func (s *Session) StartConn(conn io.ReadWriter) {
	s.PrintBannerInfo(conn)
	fmt.Fprint(conn, s.Prompt)

	locked, global := builtin.NewTables()
	br := bufio.NewReader(conn)

	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			fmt.Fprint(conn, s.Prompt)
			if err != nil {
				return
			}
			continue
		}
		if line == ".exit" {
			fmt.Fprint(conn, "Good Bye!\n")
			return
		}
		s.executeWithRecovery(conn, br, line, locked, global)
		fmt.Fprint(conn, s.Prompt)
		if err != nil {
			return
		}
	}
}

// executeWithRecovery runs one line through the full run() pipeline
// against the session's own tables, recovering from panics the way the
// teacher's REPL does so one bad line never kills the session.
func (s *Session) executeWithRecovery(w io.Writer, r io.Reader, line string, locked, global *rtctx.SymbolTable) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	runMu.Lock()
	defer runMu.Unlock()

	interp.Init(locked, global)

	result, err := interp.RunIO("<repl>", line, w, r)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err.Error())
		return
	}
	if result != nil && !interp.IsNoReturn(result) {
		yellowColor.Fprintf(w, "%s\n", result.ToString())
	}
}
