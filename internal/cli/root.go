package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	List(ctx context.Context, query string)
	Show(ctx context.Context, id string)
	Add(ctx context.Context)
	Edit(ctx context.Context, id string)
	Delete(ctx context.Context, id string)
	Attach(ctx context.Context, id, path string)
	Detach(ctx context.Context, id string)
	Sort(ctx context.Context, opt string)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Handlers log their own errors; the loop itself never fails.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nk %s> ", statusFn()))
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
				printlnFn("Available commands: (l)ist [query], show <id>, add, edit <id>, delete <id>, attach <id> <file>, detach <id>, sort <option>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "l", "list":
			a.List(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			a.Show(ctx, args[0])

		case "add":
			a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			a.Delete(ctx, args[0])

		case "attach":
			if len(args) < 2 {
				printlnFn("Usage: attach <id> <file>")
				continue
			}
			a.Attach(ctx, args[0], args[1])

		case "detach":
			if len(args) == 0 {
				printlnFn("Usage: detach <id>")
				continue
			}
			a.Detach(ctx, args[0])

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort newest|oldest|titleAsc|titleDesc")
				continue
			}
			a.Sort(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to notekeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
