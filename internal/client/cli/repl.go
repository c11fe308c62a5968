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
	Cart(ctx context.Context) error
	RemoveItem(ctx context.Context) error
	Checkout(ctx context.Context) error
	Order(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
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
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - cart           — list the cart lines
//	  - remove         — remove a cart line (interactive ID prompt)
//	  - checkout       — place an order (interactive payment flow)
//	  - order          — show an order confirmation (interactive ID prompt)
//	  - whoami         — show the signed-in account
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands that need a session may be entered while logged out; the handler
// starts the login view and resumes the command afterwards. Any errors
// returned by command handlers are ignored here; handlers report their own
// errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: cart, remove, checkout, order, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, cart, checkout, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "c", "cart":
			_ = a.Cart(ctx)

		case "remove":
			_ = a.RemoveItem(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "order":
			_ = a.Order(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
