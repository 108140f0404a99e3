package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/telmo/marketplace"
)

type addUserCmd struct {
	name     string
	username string
	balance  string
}

func (*addUserCmd) Name() string     { return "adduser" }
func (*addUserCmd) Synopsis() string { return "create a new user account" }
func (*addUserCmd) Usage() string {
	return `mkt adduser -name <display name> -username <username> [-balance <amount>]

  Creates a user with an empty inventory and transaction history. The
  username must be unique across the store. Without -balance the user
  starts with the default balance of 100.
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name for the new user.")
	f.StringVar(&c.username, "username", "", "Unique username identifying the new user.")
	f.StringVar(&c.balance, "balance", "", "Starting balance. Defaults to 100.")
}

func (c *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.username == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -username are required.")
		return subcommands.ExitUsageError
	}

	var balance *marketplace.Money
	if c.balance != "" {
		d, err := decimal.NewFromString(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid balance %q: %v\n", c.balance, err)
			return subcommands.ExitUsageError
		}
		m := marketplace.M(d)
		balance = &m
	}

	user, err := openService().CreateUser(c.name, c.username, balance)
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created user %q with balance %s.\n", user.Username, user.Balance)
	return subcommands.ExitSuccess
}
