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
	Whoami(ctx context.Context) error
	Refresh(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Search(ctx context.Context) error
	Show(ctx context.Context) error
	Upload(ctx context.Context) error
	AddLink(ctx context.Context) error
	Download(ctx context.Context) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	Tags(ctx context.Context) error
	AddTags(ctx context.Context) error
	Bookmarks(ctx context.Context) error
	Bookmark(ctx context.Context) error
	Stats(ctx context.Context) error
	Activity(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the UniResource Hub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("unihub %s> ", statusFn()))
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
				printlnFn("Available commands: (s)earch, show, upload, addlink, download, categories, addcategory, tags, addtags, bookmarks, bookmark, stats, activity, whoami, refresh, profile, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, search, show, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "s", "search", "list":
			_ = a.Search(ctx)

		case "show":
			_ = a.Show(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "addlink":
			_ = a.AddLink(ctx)

		case "download":
			_ = a.Download(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "addcategory":
			_ = a.AddCategory(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "addtags":
			_ = a.AddTags(ctx)

		case "bookmarks":
			_ = a.Bookmarks(ctx)

		case "bookmark":
			_ = a.Bookmark(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
