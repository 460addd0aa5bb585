package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sondage/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Route() string
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	SwitchMode(ctx context.Context) error
	Vote(ctx context.Context, choice models.Choice) error
	Show(ctx context.Context) error
	Refresh(ctx context.Context) error
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	On /:
//	  - login          sign in with an email
//	  - register       create an account (pseudo + email)
//	  - switch         toggle between the login and register forms
//
//	On /vote:
//	  - oui | non      cast a vote
//	  - vote <choice>  same, choice is case-insensitive
//	  - logout         forget the stored user
//
//	Anywhere:
//	  - show           redraw the current page
//	  - refresh        reload the current page
//	  - go <path>      open a page (/ or /vote)
//	  - help
//	  - exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sondage %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help":
			if a.Route() == RouteVote {
				printlnFn("Available commands: oui, non, vote <choice>, show, refresh, logout, go <path>, exit")
			} else {
				printlnFn("Available commands: login, register, switch, show, go <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "switch":
			_ = a.SwitchMode(ctx)

		case "oui", "non":
			choice, _ := models.ParseChoice(cmd)
			_ = a.Vote(ctx, choice)

		case "vote":
			if len(args) == 0 {
				printlnFn("Usage: vote <oui|non>")
				continue
			}
			choice, err := models.ParseChoice(args[0])
			if err != nil {
				printlnFn("Unknown choice:", args[0])
				continue
			}
			_ = a.Vote(ctx, choice)

		case "show":
			_ = a.Show(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

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
