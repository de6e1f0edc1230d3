/*
File    : PeanutScript/cmd/peanut/main.go

Package main is the entry point for the Peanut interpreter. Grounded on
teacher main/main.go: same --help/--version/server/file/REPL dispatch,
same colored-output/panic-recovery shape, generalized to Peanut's
run(fn, text) pipeline and builtin.NewTables/interp.Init wiring instead
of Go-Mix's single package-level evaluator.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/gapples2/PeanutScript/builtin"
	"github.com/gapples2/PeanutScript/interp"
	"github.com/gapples2/PeanutScript/peanutfile"
	"github.com/gapples2/PeanutScript/replsrv"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "gapples2"
	LICENCE = "MIT"
	PROMPT  = "peanut >>> "
	BANNER  = `
  ____                             _
 |  _ \ ___  __ _ _ __  _   _ _ __| |_
 | |_) / _ \/ _` + "`" + ` | '_ \| | | | '__| __|
 |  __/  __/ (_| | | | | |_| | |  | |_
 |_|   \___|\__,_|_| |_|\__,_|_|   \__|
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	interp.Warn = func(msg string) { yellowColor.Fprintln(os.Stderr, msg) }

	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch {
		case arg == "--help" || arg == "-h":
			showHelp()
			os.Exit(0)
		case arg == "--version" || arg == "-v":
			showVersion()
			os.Exit(0)
		case arg == "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: peanut server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	session := replsrv.NewSession(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	session.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Peanut - A Small Dynamically-Typed Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  peanut                     Start interactive REPL mode")
	yellowColor.Println("  peanut <path-to-file>      Execute a Peanut file (.peanut)")
	yellowColor.Println("  peanut server <port>       Start REPL server on specified port")
	yellowColor.Println("  peanut --help              Display this help message")
	yellowColor.Println("  peanut --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  peanut")
	yellowColor.Println("  peanut samples/hello.peanut")
	yellowColor.Println("  peanut server 8080         # Start REPL server on port 8080")
}

func showVersion() {
	cyanColor.Println("Peanut - A Small Dynamically-Typed Scripting Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a single Peanut source file against its own
// fresh tables, then exits nonzero on any parse or runtime error —
// mirroring the teacher's runFile/executeFileWithRecovery split.
func runFile(fileName string) {
	resolvedName, source, err := peanutfile.Load(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file %q: %v\n", resolvedName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(resolvedName, source)
}

func executeFileWithRecovery(fileName, source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	locked, global := builtin.NewTables()
	interp.Init(locked, global)

	result, err := interp.Run(fileName, source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	if result != nil && !interp.IsNoReturn(result) {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
	}
}

// startServer listens on port and spawns one goroutine per accepted
// connection, each running its own REPL session (see replsrv's
// concurrency note for how fresh-tables-per-connection is reconciled with
// interp's process-wide table singletons).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Peanut REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	session := replsrv.NewSession(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	session.StartConn(conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
