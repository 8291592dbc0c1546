/*
File    : pepega/cmd/pepega/main.go
Package : main

Command pepega is the outer CLI driver spec.md §6 calls out as outside
the language core's scope: argv parsing, the REPL prompt loop, file
reading, and the stderr error sink. Grounded on go-mix's main/main.go
for the overall dispatch shape (flag check -> server/file/REPL
branches, colored help/version text, panic recovery around file
execution) with the evaluation core itself replaced by pepega.Run.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/KunalKatiyar/pepega"
	"github.com/KunalKatiyar/pepega/config"
	"github.com/KunalKatiyar/pepega/internal/applog"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
	"github.com/KunalKatiyar/pepega/repl"
	"github.com/KunalKatiyar/pepega/server"
)

const version = "0.1.0"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	cfg, err := config.LoadDefaultFile()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[config error] %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]

	if len(args) == 0 {
		runRepl(cfg)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "server":
		port := fmt.Sprintf("%d", cfg.ServerPort)
		if len(args) >= 2 {
			port = args[1]
		}
		runServer(cfg, port)
		return
	}

	if len(args) > 1 {
		redColor.Fprintf(os.Stderr, "Usage: pepega [script]\n")
		os.Exit(64)
	}

	os.Exit(runFile(cfg, args[0]))
}

func showHelp() {
	cyanColor.Println("Pepega - a small dynamically-typed scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pepega                 Start interactive REPL mode")
	yellowColor.Println("  pepega <path>          Execute a Pepega source file")
	yellowColor.Println("  pepega server <port>   Start a WebSocket REPL server")
	yellowColor.Println("  pepega --help          Display this help message")
	yellowColor.Println("  pepega --version       Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /env                   Show the names bound in the global environment")
	yellowColor.Println("  /exit                  Exit the REPL")
}

func showVersion() {
	cyanColor.Printf("Pepega %s\n", version)
}

// runFile reads and executes a Pepega source file, returning the
// process exit code: 0 on success, 65 on a lex/parse error, 70 on an
// unrecovered runtime error, per spec.md §6/§7's exit-code contract.
func runFile(cfg config.Config, path string) int {
	log := newLogger(cfg)
	defer log.Sync()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read '%s': %v\n", path, err)
		return 1
	}

	if cfg.EchoAST {
		printAST(string(source))
	}

	exitCode := 0
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic during execution", zap.Any("panic", rec))
				redColor.Fprintf(os.Stderr, "[runtime error] %v\n", rec)
				exitCode = 70
			}
		}()

		hadError := false
		lines, err := pepega.Run(string(source), func(line int, where, message string) {
			hadError = true
			if where == "" {
				fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, message)
			} else {
				fmt.Fprintf(os.Stderr, "[line %d] Error %s: %s\n", line, where, message)
			}
		})
		for _, l := range lines {
			fmt.Println(l)
		}
		if err != nil {
			if _, isStatic := err.(*pepega.StaticError); isStatic {
				exitCode = 65
				return
			}
			exitCode = 70
			return
		}
		if hadError {
			exitCode = 65
		}
	}()
	return exitCode
}

func runRepl(cfg config.Config) {
	log := newLogger(cfg)
	defer log.Sync()

	r := repl.New(cfg.Prompt, log)
	if err := r.Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[repl error] %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger every run mode shares:
// development (console, debug+) when the rc file sets "verbose",
// production (JSON, info+) otherwise.
func newLogger(cfg config.Config) applog.Logger {
	if cfg.Verbose {
		return applog.NewDevelopment()
	}
	return applog.New()
}

func runServer(cfg config.Config, port string) {
	log := newLogger(cfg)
	defer log.Sync()

	srv := server.New(log)
	cyanColor.Printf("Pepega WebSocket server listening on :%s\n", port)
	if err := srv.ListenAndServe(":" + port); err != nil {
		redColor.Fprintf(os.Stderr, "[server error] %v\n", err)
		os.Exit(1)
	}
}

// printAST prints each top-level statement's parse tree via
// parser.Print, wired to the config file's "echo_ast" setting.
func printAST(source string) {
	lx := lexer.New(source, func(int, string) {})
	p := parser.New(lx.ScanTokens())
	statements := p.Parse()
	if p.HasErrors() {
		return
	}
	fmt.Println(parser.Print(statements))
}
