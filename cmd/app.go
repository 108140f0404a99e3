// Package cmd implements the CLI application to run the marketplace.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/telmo/marketplace"
)

// Commands lists the subcommands in registration order. A main package
// registers each of them and executes the user-selected one.
var Commands = []subcommands.Command{
	&addUserCmd{},
	&delUserCmd{},
	&listCmd{},
	&buyCmd{},
	&viewCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "", "Path to the store file (JSON). Overrides MKT_STORE_FILE.")

// openService builds the service over the file-backed store. A missing store
// file starts empty, so the first command of a fresh installation works.
func openService() *marketplace.Service {
	cfg := loadConfig()
	path := *storeFile
	if path == "" {
		path = cfg.StoreFile
	}
	marketplace.DefaultBalance = marketplace.M(cfg.DefaultBalance)
	return marketplace.NewService(&marketplace.FileRepository{Path: path, InitMissing: true})
}

// reportError prints the console line for a failed operation.
func reportError(err error) {
	switch {
	case errors.Is(err, marketplace.ErrDuplicateUsername):
		fmt.Println("This username is already taken. Please choose a different one.")
	case errors.Is(err, marketplace.ErrUserNotFound):
		fmt.Println("The username given does not exist.")
	case errors.Is(err, marketplace.ErrItemNotFound):
		fmt.Println("Cannot find item with id given!")
	case errors.Is(err, marketplace.ErrSelfTrade):
		fmt.Println("You already own this item!")
	case errors.Is(err, marketplace.ErrInsufficientFunds):
		fmt.Println("Insufficient funds!")
	case errors.Is(err, marketplace.ErrIDSpaceExhausted):
		fmt.Println("No available IDs left to give to item.")
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}

// printMarkdown renders a markdown report for the terminal.
func printMarkdown(s string) {
	out, err := glamour.Render(s, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(s)
		return
	}
	fmt.Print(out)
}
