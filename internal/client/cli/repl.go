package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Undone(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	CompleteAll(ctx context.Context) error
	UncompleteAll(ctx context.Context) error
	ClearDone(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the to-do CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - list | l        — list tasks
//	  - add <title>     — add a task
//	  - done <id>       — mark a task completed
//	  - undone <id>     — reopen a task
//	  - rename <id> <t> — change a task's title
//	  - rm <id>         — delete a task
//	  - complete-all    — mark every open task completed
//	  - uncomplete-all  — reopen every completed task
//	  - clear-done      — delete every completed task
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("todo %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, done, undone, rename, rm, complete-all, uncomplete-all, clear-done, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <title>")
				continue
			}
			_ = a.Add(ctx, args)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.Done(ctx, args)

		case "undone":
			if len(args) == 0 {
				printlnFn("Usage: undone <id>")
				continue
			}
			_ = a.Undone(ctx, args)

		case "rename":
			if len(args) < 2 {
				printlnFn("Usage: rename <id> <new title>")
				continue
			}
			_ = a.Rename(ctx, args)

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <id>")
				continue
			}
			_ = a.Remove(ctx, args)

		case "complete-all":
			_ = a.CompleteAll(ctx)

		case "uncomplete-all":
			_ = a.UncompleteAll(ctx)

		case "clear-done":
			_ = a.ClearDone(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
