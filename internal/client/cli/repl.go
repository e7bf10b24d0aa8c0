package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/rentverse/internal/client/api"
	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error
	Properties(ctx context.Context, args []string) error
	Property(ctx context.Context, args []string) error
	Mine(ctx context.Context) error
	Create(ctx context.Context) error
	Favorites(ctx context.Context) error
	Fav(ctx context.Context, args []string) error
	Bookings(ctx context.Context) error
	Book(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
	Locate(ctx context.Context, args []string) error
}

// needLogin lists commands that only make sense with a signed-in user.
var needLogin = map[string]bool{
	"logout": true, "whoami": true, "profile": true, "avatar": true,
	"mine": true, "create": true, "favorites": true, "fav": true,
	"bookings": true, "book": true, "cancel": true,
}

const (
	helpGuest  = "Available commands: register, login, admin, properties, property, locate, exit"
	helpMember = "Available commands: whoami, profile, avatar, properties, property, mine, create, favorites, fav, bookings, book, cancel, locate, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Anyone:
//	  - help                    — show available commands
//	  - register | login        — authenticate
//	  - admin                   — sign in the built-in operator account
//	  - properties [k=v ...]    — list properties (city=, min=, max=, sort=, ...)
//	  - property <id>           — show one property
//	  - locate [lat lon]        — reverse geocode, or show the default location
//	  - exit | quit             — leave the program
//
//	Signed in:
//	  - whoami | profile | avatar <file>
//	  - mine | create
//	  - favorites | fav <propertyId>
//	  - bookings | book <propertyId> | cancel <bookingId>
//	  - logout
//
// Handler errors are printed and the loop continues. The loop ends on EOF or
// exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rentverse %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needLogin[cmd] && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "admin":
			cmdErr = a.Admin(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "avatar":
			cmdErr = a.Avatar(ctx, args)
		case "properties", "ls":
			cmdErr = a.Properties(ctx, args)
		case "property", "show":
			cmdErr = a.Property(ctx, args)
		case "mine":
			cmdErr = a.Mine(ctx)
		case "create":
			cmdErr = a.Create(ctx)
		case "favorites":
			cmdErr = a.Favorites(ctx)
		case "fav":
			cmdErr = a.Fav(ctx, args)
		case "bookings":
			cmdErr = a.Bookings(ctx)
		case "book":
			cmdErr = a.Book(ctx, args)
		case "cancel":
			cmdErr = a.Cancel(ctx, args)
		case "locate":
			cmdErr = a.Locate(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
	}
}

// describe turns an error into a line for the user.
func describe(err error) string {
	if errors.Is(err, models.ErrValidation) {
		return err.Error()
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == api.KindNetwork {
			return "server unreachable, check your connection"
		}
		return apiErr.Message
	}
	return err.Error()
}

// usageError reports a command invoked with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }
