package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type delUserCmd struct {
	username string
}

func (*delUserCmd) Name() string     { return "deluser" }
func (*delUserCmd) Synopsis() string { return "delete a user and their listings" }
func (*delUserCmd) Usage() string {
	return `mkt deluser -username <username>

  Removes the user and every item in their inventory. The item ids they
  held become available again. Their username stays in other users'
  transaction histories as historical record.
`
}

func (c *delUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "Username of the account to delete.")
}

func (c *delUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		fmt.Fprintln(os.Stderr, "Error: -username is required.")
		return subcommands.ExitUsageError
	}

	if err := openService().DeleteUser(c.username); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted user %q and their listings.\n", c.username)
	return subcommands.ExitSuccess
}
